package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Jumpaku/go-spath"
	"github.com/Jumpaku/go-spath/spathmust"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// Parse a slash-delimited path and render it with other delimiters
	p := spath.Parse("usr/local/share/doc", "/")
	fmt.Println(p)
	fmt.Println(p.Render("\\"))
	fmt.Println(p.WithDelimiter("."))
	logger.Debug("parsed path", "path", p, "segments", p.Len())

	// Relationship queries
	base := spath.Parse("usr/local", "/")
	fmt.Printf("%s is child of %s: %v\n", p, base, p.IsChildOf(base))
	fmt.Printf("%s relative to %s: %s\n", p, base, p.RelativeTo(base))
	fmt.Printf("common parent with usr/lib/doc: %s\n", p.CommonParent(spath.Parse("usr/lib/doc", "/")))

	// Composition and iteration
	q := base.Append("bin").Concat(spath.Parse("tool.d", "."))
	for s := range q.All() {
		fmt.Println("-", s)
	}

	// Indexed access
	if _, err := q.Get(q.Len()); err != nil {
		logger.Warn("out of range access", "error", err)
	}
	spathmust.Set(&q, 0, "opt")
	fmt.Println(q)

	// Paths decode from YAML scalars or sequences
	var config struct {
		Install spath.Path   `yaml:"install"`
		Paths   []spath.Path `yaml:"paths"`
	}
	input := "install: opt/app\npaths:\n  - etc/app\n  - [var, lib, app]\n"
	if err := yaml.Unmarshal([]byte(input), &config); err != nil {
		logger.Error("failed to decode config", "error", err)
		os.Exit(1)
	}
	for _, path := range config.Paths {
		fmt.Printf("%s (%d segments)\n", path.Render("/"), path.Len())
	}
	out, err := yaml.Marshal(config)
	if err != nil {
		logger.Error("failed to encode config", "error", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
