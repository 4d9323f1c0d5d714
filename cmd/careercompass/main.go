// Package main provides the careercompass command line client.
//
// It runs the smart course search without the HTTP server and prints the
// aggregated links.
//
// Usage:
//
//	careercompass search --skill python --interest data --limit 12
//	careercompass variants --skill python --industry finance
package main

func main() {
	Execute()
}
