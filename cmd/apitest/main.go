package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "apitest",
		Short:         "Exercise a running JSON save backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var baseURL string
	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:3000", "base URL of the server")

	rootCmd.AddCommand(saveCmd(&baseURL))
	rootCmd.AddCommand(getCmd(&baseURL, "health", "Check server liveness", "/api/health"))
	rootCmd.AddCommand(getCmd(&baseURL, "endpoints", "List the advertised endpoints", "/"))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		fmt.Fprintln(os.Stderr, "Make sure the server is running on", baseURL)
		os.Exit(1)
	}
}

func saveCmd(baseURL *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "POST a JSON payload to /api/save",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")

			var (
				body []byte
				err  error
			)
			if file != "" {
				body, err = os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read payload: %w", err)
				}
			} else {
				body, err = json.MarshalIndent(samplePayload(time.Now()), "", "  ")
				if err != nil {
					return err
				}
			}

			fmt.Println("Sending data:", string(body))
			client := &http.Client{Timeout: 30 * time.Second}
			resp, err := client.Post(endpointURL(*baseURL, "/api/save"), "application/json", bytes.NewReader(body))
			if err != nil {
				return err
			}
			return report(resp)
		},
	}
	cmd.Flags().StringP("file", "f", "", "path to a JSON payload (defaults to a built-in sample)")
	return cmd
}

func getCmd(baseURL *string, use, short, path string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &http.Client{Timeout: 10 * time.Second}
			resp, err := client.Get(endpointURL(*baseURL, path))
			if err != nil {
				return err
			}
			return report(resp)
		},
	}
}

// report prints the response and fails on non-2xx statuses
func report(resp *http.Response) error {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	fmt.Println("\nResponse status:", resp.StatusCode)
	var pretty bytes.Buffer
	if json.Indent(&pretty, raw, "", "  ") == nil {
		fmt.Println("Response:", pretty.String())
	} else {
		fmt.Println("Response:", string(raw))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("API test failed with status %d", resp.StatusCode)
	}
	fmt.Println("\nAPI test successful!")
	return nil
}

func endpointURL(base, path string) string {
	return strings.TrimRight(base, "/") + path
}

// samplePayload mirrors what a frontend might send: nested objects, arrays and scalars
func samplePayload(now time.Time) map[string]any {
	return map[string]any{
		"name":  "Test User",
		"age":   25,
		"email": "test@example.com",
		"preferences": map[string]any{
			"theme":         "dark",
			"notifications": true,
		},
		"hobbies": []string{"reading", "coding", "gaming"},
		"metadata": map[string]any{
			"source":    "test-script",
			"timestamp": now.UTC().Format(time.RFC3339),
		},
		"userData": map[string]any{
			"profile": map[string]any{
				"avatar": "https://example.com/avatar.jpg",
				"bio":    "Software Developer",
			},
			"settings": map[string]any{
				"language": "en",
				"timezone": "UTC",
			},
		},
	}
}
