package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"axotly/internal/ast"
	"axotly/internal/httpclient"
	"axotly/internal/logging"
)

// newRequestCmd implements the single-ad-hoc-request mode: it dispatches
// one request through the same invoker the core pipeline uses and prints
// the response directly, bypassing the parser, assertion engine and
// executor entirely.
func newRequestCmd() *cobra.Command {
	var body string
	var jsonBody string
	var headerFlags []string

	cmd := &cobra.Command{
		Use:   "request <method> <url>",
		Short: "Send a single ad-hoc HTTP request and print the response",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := map[string]string{}
			for _, h := range headerFlags {
				k, v, ok := strings.Cut(h, "=")
				if !ok {
					return fmt.Errorf("invalid --header %q, expected K=V", h)
				}
				headers[k] = v
			}

			reqBody := ast.Body{Kind: ast.BodyNone}
			if jsonBody != "" {
				var decoded any
				if err := decodeJSON(jsonBody, &decoded); err != nil {
					return fmt.Errorf("invalid --json: %w", err)
				}
				reqBody = ast.Body{Kind: ast.BodyJSON, JSON: decoded}
			} else if body != "" {
				reqBody = ast.Body{Kind: ast.BodyText, Text: body}
			}

			log, err := logging.New("info")
			if err != nil {
				return err
			}
			inv := httpclient.New(log)

			resp, err := inv.Send(cmd.Context(), ast.HttpRequest{
				Method:  args[0],
				URL:     args[1],
				Headers: headers,
				Body:    reqBody,
			})
			if err != nil {
				return err
			}

			printResponse(cmd, resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&body, "body", "", "send this text verbatim as the request body")
	cmd.Flags().StringVar(&jsonBody, "json", "", "send this JSON as the request body")
	cmd.Flags().StringArrayVar(&headerFlags, "header", nil, "add a request header, K=V (repeatable)")
	return cmd
}

func printResponse(cmd *cobra.Command, resp *ast.HttpResponse) {
	out := cmd.OutOrStdout()
	statusColor := color.New(color.FgGreen)
	if resp.Status >= 400 {
		statusColor = color.New(color.FgRed)
	}
	statusColor.Fprintf(out, "%d", resp.Status)
	fmt.Fprintf(out, " (%s)\n", resp.Duration.Round(time.Millisecond))
	for k, v := range resp.Headers {
		fmt.Fprintf(out, "%s: %s\n", k, v)
	}
	if resp.Body != nil {
		fmt.Fprintln(out, *resp.Body)
	}
}

func decodeJSON(text string, out *any) error {
	return json.Unmarshal([]byte(text), out)
}
