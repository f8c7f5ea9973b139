package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/uvmlab/uvmlab/internal/arch"
	"github.com/uvmlab/uvmlab/internal/tutor"
)

var (
	askComponent string
	askPlain     bool
)

func init() {
	askCmd.Flags().StringVar(&askComponent, "component", "", "architecture component to use as context (e.g. driver)")
	askCmd.Flags().BoolVar(&askPlain, "plain", false, "print the raw reply without markdown rendering")
	rootCmd.AddCommand(askCmd)
}

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the tutor a one-shot question",
	Long: `Ask the LLM tutor a free-text question. With --component and no
question, prints the tutor's explanation of that component.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := tutor.NewOpenAIClient(GetConfig().Tutor)
		if err != nil {
			return err
		}

		var component arch.Component
		if askComponent != "" {
			component, err = arch.ParseComponent(askComponent)
			if err != nil {
				return err
			}
		}

		reply, err := fetchReply(cmd, client, component, args)
		if err != nil {
			return err
		}

		return printReply(reply)
	},
}

func fetchReply(cmd *cobra.Command, client tutor.Client, component arch.Component, args []string) (string, error) {
	ctx := cmd.Context()

	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		if component == "" {
			return "", fmt.Errorf("a question or --component is required")
		}
		answer, err := client.Explain(ctx, component)
		if err != nil {
			return tutor.FallbackError, nil
		}
		return joinAnswer(answer), nil
	}

	stream, err := client.Chat(ctx, nil, args[0], component)
	if err != nil {
		return tutor.FallbackError, nil
	}

	var reply strings.Builder
	for chunk := range stream.Chunks() {
		reply.WriteString(chunk)
	}
	if err := stream.Err(); err != nil {
		return tutor.FallbackError, nil
	}

	return reply.String(), nil
}

func joinAnswer(answer tutor.Answer) string {
	if answer.Code == "" {
		return answer.Text
	}
	return answer.Text + "\n\n```systemverilog\n" + answer.Code + "\n```"
}

func printReply(reply string) error {
	if askPlain || !IsInteractive() {
		fmt.Fprintln(os.Stdout, reply)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Fprintln(os.Stdout, reply)
		return nil
	}

	rendered, err := renderer.Render(reply)
	if err != nil {
		fmt.Fprintln(os.Stdout, reply)
		return nil
	}

	fmt.Fprint(os.Stdout, rendered)
	return nil
}
