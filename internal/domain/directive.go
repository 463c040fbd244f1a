package domain

import (
	"go/ast"
	"log/slog"
	"strings"

	m "gooze.dev/pkg/mutor/internal/model"
)

const (
	ignoreDirective     = "//mutor:ignore"
	defaultIgnoreReason = "ignored by " + ignoreDirective + " directive"
)

// ignoreRule is one parsed //mutor:ignore comment.
type ignoreRule struct {
	kinds  []m.MutationKind
	reason string
}

// parseIgnoreDirectives reads //mutor:ignore lines from a comment group.
//
//	//mutor:ignore                          every kind, default reason
//	//mutor:ignore arithmetic,number        listed kinds, default reason
//	//mutor:ignore arithmetic legacy maths  listed kinds, custom reason
//	//mutor:ignore all generated code       every kind, custom reason
//
// A directive whose first word is not a kind list is malformed: it filters
// nothing and its text is returned in malformed.
func parseIgnoreDirectives(groups ...*ast.CommentGroup) (rules []ignoreRule, malformed []string) {
	for _, group := range groups {
		if group == nil {
			continue
		}

		for _, comment := range group.List {
			rest, ok := strings.CutPrefix(comment.Text, ignoreDirective)
			if !ok || (rest != "" && rest[0] != ' ' && rest[0] != '\t') {
				continue
			}

			rule, ok := parseIgnoreRule(strings.TrimSpace(rest))
			if !ok {
				malformed = append(malformed, comment.Text)
				continue
			}

			rules = append(rules, rule)
		}
	}

	return rules, malformed
}

func parseIgnoreRule(text string) (ignoreRule, bool) {
	if text == "" {
		return ignoreRule{kinds: []m.MutationKind{m.KindAll}, reason: defaultIgnoreReason}, true
	}

	first, reason, _ := strings.Cut(text, " ")

	kinds, ok := parseKindList(first)
	if !ok {
		return ignoreRule{}, false
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultIgnoreReason
	}

	return ignoreRule{kinds: kinds, reason: reason}, true
}

func parseKindList(list string) ([]m.MutationKind, bool) {
	var kinds []m.MutationKind

	for name := range strings.SplitSeq(list, ",") {
		kind, err := m.ParseMutationKind(name)
		if err != nil {
			return nil, false
		}

		kinds = append(kinds, kind)
	}

	return kinds, len(kinds) > 0
}

// applyIgnoreDirectives derives a context filtering whatever the comments ask for.
// Malformed directives are reported to logger and otherwise ignored.
func applyIgnoreDirectives(logger *slog.Logger, mctx MutationContext, groups ...*ast.CommentGroup) MutationContext {
	rules, malformed := parseIgnoreDirectives(groups...)

	for _, text := range malformed {
		logger.Warn("Skipping malformed ignore directive, first word must be 'all' or a list of mutation kinds",
			"directive", text)
	}

	for _, rule := range rules {
		for _, kind := range rule.kinds {
			mctx = mctx.WithFilter(kind, rule.reason)
		}
	}

	return mctx
}

// fileHeaderComments returns the comment groups above the package clause.
func fileHeaderComments(file *ast.File) []*ast.CommentGroup {
	var header []*ast.CommentGroup

	for _, group := range file.Comments {
		if group.End() < file.Package {
			header = append(header, group)
		}
	}

	return header
}
