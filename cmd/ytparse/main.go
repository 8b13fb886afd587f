/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command ytparse decodes a response document from stdin (or a file named
// by -in) and prints a summary of its parsed sections to stdout. It exists
// to exercise the full response package end to end, the way the teacher
// framework's example/ directory exercised a rule chain from the command
// line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bittoy/ytparse/config"
	"github.com/bittoy/ytparse/metrics"
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/response"
	"github.com/bittoy/ytparse/types"

	"github.com/rs/zerolog"
)

func main() {
	var (
		inPath string
		debug  bool
	)
	flag.StringVar(&inPath, "in", "", "path to a response JSON document (default stdin)")
	flag.BoolVar(&debug, "debug", false, "log every dispatch at debug level")
	flag.Parse()

	data, err := readInput(inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ytparse:", err)
		os.Exit(1)
	}

	doc, err := rawnode.Decode(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ytparse: decode:", err)
		os.Exit(1)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	opts := []types.Option{
		types.WithAspects(metrics.Aspect{}),
		types.WithLogger(logger),
	}
	if debug {
		opts = append(opts, types.WithAspects(metrics.NewDebug(logger)))
	}
	if cfgPath := os.Getenv("YTPARSE_CONFIG"); cfgPath != "" {
		file, err := config.Load(cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ytparse: config:", err)
		} else {
			if s, err := file.Sanitizer(); err == nil {
				opts = append(opts, types.WithSanitize(s.Sanitize))
			} else {
				fmt.Fprintln(os.Stderr, "ytparse: sanitizer config:", err)
			}
			opts = append(opts, types.WithLimiter(file.Limiter()))
		}
	}

	cfg := response.NewOptions(opts...)
	res := response.Parse(cfg, doc)
	summarize(res)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func summarize(r *response.Response) {
	fmt.Printf("contents:           %s\n", resultSummary(r.Contents))
	fmt.Printf("onResponseReceived: %d node(s)\n", r.OnResponseReceived.Len())
	fmt.Printf("actions:            %d node(s)\n", r.Actions.Len())
	fmt.Printf("header:             %s\n", resultSummary(r.Header))
	fmt.Printf("items:              %s\n", resultSummary(r.Items))
	if r.StreamingData != nil {
		fmt.Printf("streamingData:      %d format(s), %d adaptive\n",
			len(r.StreamingData.Formats), len(r.StreamingData.AdaptiveFormats))
	}
	if r.VideoDetails != nil {
		fmt.Printf("videoDetails:       %s\n", r.VideoDetails.TypeTag())
	}
	if r.PlayerResponse != nil {
		fmt.Println("playerResponse:     present, recursing...")
		summarize(r.PlayerResponse)
	}
	if r.WatchNextResponse != nil {
		fmt.Println("watchNextResponse:  present, recursing...")
		summarize(r.WatchNextResponse)
	}
}

func resultSummary(res types.SuperParsedResult) string {
	if res.IsEmpty() {
		return "empty"
	}
	if arr, ok := res.AsArray(); ok {
		return fmt.Sprintf("%d node(s)", arr.Len())
	}
	if n, ok := res.AsSingle(); ok {
		return string(n.TypeTag())
	}
	return "empty"
}
