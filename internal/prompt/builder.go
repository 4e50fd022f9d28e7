// Package prompt builds the textual instructions sent to discussion agents.
// A single Builder transforms a Context (agent identity, project context,
// topic, transcript, phase) into the exact prompt text; building is pure and
// deterministic so the same context always yields the same prompt.
package prompt

import (
	"errors"
	"fmt"
	"strings"
)

// Phase identifies which turn type a prompt is being built for.
type Phase string

const (
	// PhaseDiscussion is a regular turn within a round.
	PhaseDiscussion Phase = "discussion"
	// PhaseConsensus is the closing summary turn after all rounds.
	PhaseConsensus Phase = "consensus"
)

// Context provides all the information needed to build a turn prompt.
type Context struct {
	// AgentName is the participant's display name, used in the role
	// preamble and turn instruction.
	AgentName string

	// ProjectContext is the static context block embedded verbatim. It may
	// be a placeholder such as "(No project files found.)"; the builder
	// does not special-case that.
	ProjectContext string

	// Topic is the discussion topic.
	Topic string

	// Transcript is the rendered conversation so far; empty for the
	// session's first turn.
	Transcript string

	// Phase selects the closing instruction.
	Phase Phase
}

// Builder builds discussion prompts.
type Builder struct{}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build generates the prompt text from the context.
func (b *Builder) Build(ctx *Context) (string, error) {
	if err := b.validate(ctx); err != nil {
		return "", err
	}

	sections := []string{
		"=== YOUR ROLE ===\n" + b.roleBlock(ctx.AgentName),
		"=== PROJECT CONTEXT ===\n" + ctx.ProjectContext,
		"=== DISCUSSION TOPIC ===\n" + ctx.Topic,
	}

	if ctx.Transcript != "" {
		sections = append(sections, "=== CONVERSATION SO FAR ===\n"+ctx.Transcript)
	}

	switch {
	case ctx.Phase == PhaseConsensus:
		sections = append(sections, consensusBlock)
	case ctx.Transcript != "":
		sections = append(sections, fmt.Sprintf(
			"=== YOUR TURN (%s) ===\n"+
				"Respond to the discussion. Address specific points made by others.",
			ctx.AgentName))
	default:
		sections = append(sections, fmt.Sprintf(
			"=== YOUR TURN (%s) ===\n"+
				"You speak first. Present your architectural vision: "+
				"folder structure, tech stack, key modules, and priorities.",
			ctx.AgentName))
	}

	return strings.Join(sections, "\n\n"), nil
}

func (b *Builder) validate(ctx *Context) error {
	if ctx == nil {
		return errors.New("prompt: context is required")
	}
	if ctx.AgentName == "" {
		return errors.New("prompt: agent name is required")
	}
	if ctx.Topic == "" {
		return errors.New("prompt: topic is required")
	}
	switch ctx.Phase {
	case PhaseDiscussion, PhaseConsensus:
	default:
		return fmt.Errorf("prompt: unknown phase %q", ctx.Phase)
	}
	return nil
}

// roleBlock is the fixed behavioral contract every agent receives.
func (b *Builder) roleBlock(agentName string) string {
	return fmt.Sprintf(
		"You are %s, a senior software architect participating "+
			"in a multi-agent design discussion with other AI architects.\n\n"+
			"RULES:\n"+
			"- Propose concrete, specific technical decisions.\n"+
			"- Respond to other agents by name. Build on good ideas; push back on weak ones.\n"+
			"- Keep responses focused: 300 words max.\n"+
			"- Use markdown for code blocks and folder trees.\n"+
			"- Explicitly state agreement when you agree.\n"+
			"- Stay strictly within the project's stated domain and scope.\n"+
			"- Move toward a concrete, implementable consensus.\n"+
			"- Do NOT use tools, edit files, or run commands. Just respond with text.\n",
		agentName)
}

// consensusBlock is the fixed closing template ending in a verdict token.
const consensusBlock = "=== CONSENSUS PHASE ===\n" +
	"Provide your FINAL summary:\n" +
	"1. **AGREED POINTS** - what the group has converged on\n" +
	"2. **FINAL PROJECT STRUCTURE** - concrete folder tree\n" +
	"3. **TECH STACK** - final technology choices\n" +
	"4. **IMPLEMENTATION ORDER** - priority-ranked phases\n" +
	"5. **OPEN QUESTIONS** - unresolved items\n" +
	"6. **YOUR VERDICT**: AGREE / PARTIALLY AGREE / DISAGREE (with reason)\n"
