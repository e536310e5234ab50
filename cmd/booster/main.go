package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"ragbooster/internal/booster"
)

// The process boundary: one function call per invocation, arguments as
// a JSON array, result printed as JSON on stdout.
//
//	booster init '["https://api.groq.com/openai/v1/chat/completions","<key>","llama-3.1-8b-instant"]'
//	booster load '["<document text>"]'
//	booster ask '["What does the document say about X?"]'
//	booster stats
func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printJSON(map[string]any{"error": "No function specified"})
		os.Exit(1)
	}
	fn := os.Args[1]
	var args []any
	if len(os.Args) > 2 {
		if err := json.Unmarshal([]byte(os.Args[2]), &args); err != nil {
			printJSON(map[string]any{"error": "invalid arguments: " + err.Error()})
			os.Exit(1)
		}
	}

	session := booster.NewSession()
	var result any
	switch fn {
	case "init":
		result = session.Init(argString(args, 0), argString(args, 1), argString(args, 2))
	case "load":
		result = session.Load(argString(args, 0))
	case "ask":
		result = session.Ask(context.Background(), argString(args, 0), argInt(args, 1))
	case "stats":
		result = session.Stats()
	default:
		result = map[string]any{"error": fmt.Sprintf("Unknown function: %s", fn)}
	}
	printJSON(result)
}

func printJSON(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		fmt.Println(`{"error":"failed to encode result"}`)
		return
	}
	fmt.Println(string(data))
}

func argString(args []any, i int) string {
	if i < len(args) {
		if s, ok := args[i].(string); ok {
			return s
		}
	}
	return ""
}

func argInt(args []any, i int) int {
	if i < len(args) {
		if f, ok := args[i].(float64); ok {
			return int(f)
		}
	}
	return 0
}
