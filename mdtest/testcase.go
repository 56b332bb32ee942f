// Package mdtest extracts ctree golden test cases from Markdown files.
//
// A test case is a heading starting with "Test: ", a fenced `c` block
// holding the input source, and either a fenced `json` block with the
// expected syntax tree or a fenced `error` block with the expected
// parse error message.
package mdtest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	fenceInput = "c"
	fenceTree  = "json"
	fenceError = "error"
)

// Case is one extracted test case.
type Case struct {
	Name      string // heading text after "Test: "
	Input     string // the C source from the c fence
	WantTree  string // expected JSON tree, empty for error cases
	WantError string // expected error message, empty for tree cases
}

// ExtractCases parses a Markdown document and collects all test cases.
func ExtractCases(markdownContent string) ([]Case, error) {
	md := goldmark.New()
	source := []byte(markdownContent)

	doc := md.Parser().Parse(text.NewReader(source))

	var cases []Case
	var current *Case

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			headingText := extractTextFromNode(n, source)
			if strings.HasPrefix(headingText, "Test: ") {
				if current != nil {
					if err := validateCase(current); err != nil {
						return ast.WalkStop, err
					}
					cases = append(cases, *current)
				}
				current = &Case{Name: strings.TrimPrefix(headingText, "Test: ")}
			}

		case *ast.FencedCodeBlock:
			language := string(n.Language(source))
			content := extractCodeBlockContent(n, source)

			if current == nil {
				if language == fenceInput || language == fenceTree || language == fenceError {
					return ast.WalkStop, fmt.Errorf("%s fence found outside of test case", language)
				}
				return ast.WalkContinue, nil
			}

			switch language {
			case fenceInput:
				if current.Input != "" {
					return ast.WalkStop, fmt.Errorf("multiple c fences in test %q", current.Name)
				}
				current.Input = strings.TrimRight(content, "\n")
			case fenceTree:
				if current.WantTree != "" || current.WantError != "" {
					return ast.WalkStop, fmt.Errorf("multiple expectation fences in test %q", current.Name)
				}
				current.WantTree = strings.TrimRight(content, "\n")
			case fenceError:
				if current.WantTree != "" || current.WantError != "" {
					return ast.WalkStop, fmt.Errorf("multiple expectation fences in test %q", current.Name)
				}
				current.WantError = strings.TrimRight(content, "\n")
			default:
				return ast.WalkStop, fmt.Errorf("unknown fence language %q in test %q", language, current.Name)
			}
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking markdown AST: %w", err)
	}

	if current != nil {
		if err := validateCase(current); err != nil {
			return nil, err
		}
		cases = append(cases, *current)
	}

	return cases, nil
}

// extractTextFromNode extracts plain text content from a markdown node.
func extractTextFromNode(node ast.Node, source []byte) string {
	var buf bytes.Buffer

	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if textNode, ok := n.(*ast.Text); ok {
				buf.Write(textNode.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})

	return buf.String()
}

// extractCodeBlockContent extracts the content from a fenced code block.
func extractCodeBlockContent(codeBlock *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer

	for i := 0; i < codeBlock.Lines().Len(); i++ {
		line := codeBlock.Lines().At(i)
		buf.Write(line.Value(source))
	}

	return buf.String()
}

// validateCase ensures a case has an input and exactly one expectation.
func validateCase(c *Case) error {
	if c.Input == "" {
		return fmt.Errorf("test %q has no c fence", c.Name)
	}
	if c.WantTree == "" && c.WantError == "" {
		return fmt.Errorf("test %q has no json or error fence", c.Name)
	}
	return nil
}
