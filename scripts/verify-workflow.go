// SPDX-License-Identifier: MIT

//go:build ignore

// Command verify-workflow checks that .github/workflows/ci.yml keeps the
// invariants the project relies on: every pull request runs CI, pushes to
// the long-lived branches run CI, superseded runs are cancelled, and the
// test matrix covers all three desktop platforms.
//
// Usage: go run scripts/verify-workflow.go [path]
package main

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

type workflow struct {
	On          map[string]*trigger `yaml:"on"`
	Concurrency concurrency         `yaml:"concurrency"`
	Jobs        map[string]job      `yaml:"jobs"`
}

type trigger struct {
	Branches []string `yaml:"branches"`
}

type concurrency struct {
	Group            string `yaml:"group"`
	CancelInProgress bool   `yaml:"cancel-in-progress"`
}

type job struct {
	Strategy struct {
		Matrix struct {
			OS []string `yaml:"os"`
		} `yaml:"matrix"`
	} `yaml:"strategy"`
}

func main() {
	path := ".github/workflows/ci.yml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fail("read %s: %v", path, err)
	}
	var wf workflow
	if err := yaml.Unmarshal(data, &wf); err != nil {
		fail("parse %s: %v", path, err)
	}

	var violations []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			violations = append(violations, fmt.Sprintf(format, args...))
		}
	}

	pr, hasPR := wf.On["pull_request"]
	check(hasPR, "missing pull_request trigger")
	if hasPR && pr != nil {
		check(len(pr.Branches) == 0, "pull_request trigger must not filter branches (got %v)", pr.Branches)
	}

	push, hasPush := wf.On["push"]
	check(hasPush, "missing push trigger")
	if hasPush && push != nil {
		for _, want := range []string{"main", "master", "develop"} {
			check(slices.Contains(push.Branches, want), "push trigger missing branch %q", want)
		}
	}

	const wantGroup = "${{ github.workflow }}-${{ github.head_ref || github.run_id }}"
	check(wf.Concurrency.Group == wantGroup, "concurrency group is %q, want %q", wf.Concurrency.Group, wantGroup)
	check(wf.Concurrency.CancelInProgress, "concurrency must set cancel-in-progress: true")

	matrixed := false
	for name, j := range wf.Jobs {
		runners := j.Strategy.Matrix.OS
		if len(runners) == 0 {
			continue
		}
		matrixed = true
		for _, want := range []string{"macos-latest", "windows-latest", "ubuntu-latest"} {
			check(slices.Contains(runners, want), "job %q matrix missing %q", name, want)
		}
	}
	check(matrixed, "no job defines an os matrix")

	if len(violations) > 0 {
		for _, v := range violations {
			fmt.Fprintln(os.Stderr, "verify-workflow:", v)
		}
		os.Exit(1)
	}
	fmt.Println("verify-workflow: ok")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "verify-workflow: "+format+"\n", args...)
	os.Exit(1)
}
