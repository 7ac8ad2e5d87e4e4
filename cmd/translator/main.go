// Command translator runs the submission pipeline outside Cloud Functions:
// as an HTTP server, a one-shot batch, a polling worker or on a local file.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
