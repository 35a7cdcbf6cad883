// Title Verification Service
// Copyright (c) 2026 The Title Verification Service Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Title Verification Service.
//
// Title Verification Service is free software: you can redistribute it and/or
// modify it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Title Verification Service is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Title Verification Service.  If not, see <http://www.gnu.org/licenses/>.

package verify

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/AshCoder07/Title-verification/pkg/config"
)

// Rejection is the outcome of a failed content rule. A nil *Rejection from a
// rule means the title passed it.
type Rejection struct {
	Reason     string
	Suggestion string
}

// Rule is a single short-circuiting content predicate over the normalized
// title.
type Rule func(normalized string) *Rejection

// RuleSet is an ordered sequence of rules. The first failing rule terminates
// evaluation. Which rules are active, and their parameters, come from config
// so either observed policy variant (or their union) can be selected without
// code changes.
type RuleSet struct {
	rules []Rule
}

var charsetPattern = regexp.MustCompile(`^[A-Za-z0-9\s]*$`)

// NewRuleSet builds the active rules in their fixed evaluation order:
// minimum length, character whitelist, disallowed words, disallowed
// prefixes/suffixes.
func NewRuleSet(rc config.Rules) *RuleSet {
	var rules []Rule

	if rc.CheckMinLength {
		rules = append(rules, minLengthRule(rc.MinTitleLength))
	}
	if rc.CheckCharset {
		rules = append(rules, charsetRule)
	}
	if rc.CheckWords {
		rules = append(rules, disallowedWordsRule(rc.DisallowedWords))
	}
	if rc.CheckAffixes {
		rules = append(rules, affixRule(rc.DisallowedPrefixes, rc.DisallowedSuffixes))
	}

	return &RuleSet{rules: rules}
}

// Evaluate runs the rules in order and returns the first rejection, or nil
// if the title passes all of them.
func (rs *RuleSet) Evaluate(normalized string) *Rejection {
	for _, rule := range rs.rules {
		if rej := rule(normalized); rej != nil {
			return rej
		}
	}
	return nil
}

func minLengthRule(minLength int) Rule {
	return func(normalized string) *Rejection {
		if utf8.RuneCountInString(normalized) < minLength {
			return &Rejection{
				Reason:     "Title is too short for meaningful verification",
				Suggestion: fmt.Sprintf("Use a title with at least %d characters", minLength),
			}
		}
		return nil
	}
}

func charsetRule(normalized string) *Rejection {
	if !charsetPattern.MatchString(normalized) {
		return &Rejection{
			Reason:     "Title contains special characters",
			Suggestion: "Use only letters, digits and spaces",
		}
	}
	return nil
}

func disallowedWordsRule(words []string) Rule {
	banned := make(map[string]bool, len(words))
	for _, w := range words {
		banned[strings.ToLower(w)] = true
	}
	return func(normalized string) *Rejection {
		var hits []string
		seen := make(map[string]bool)
		for _, tok := range strings.Fields(normalized) {
			if banned[tok] && !seen[tok] {
				seen[tok] = true
				hits = append(hits, tok)
			}
		}
		if len(hits) > 0 {
			return &Rejection{
				Reason:     fmt.Sprintf("Title contains disallowed words: %s", strings.Join(hits, ", ")),
				Suggestion: fmt.Sprintf("Remove the words: %s", strings.Join(hits, ", ")),
			}
		}
		return nil
	}
}

func affixRule(prefixes, suffixes []string) Rule {
	return func(normalized string) *Rejection {
		for _, prefix := range prefixes {
			if strings.HasPrefix(normalized, strings.ToLower(prefix)) {
				return &Rejection{
					Reason:     fmt.Sprintf("Title starts with disallowed prefix %q", prefix),
					Suggestion: fmt.Sprintf("Remove the prefix %q", prefix),
				}
			}
		}
		for _, suffix := range suffixes {
			if strings.HasSuffix(normalized, strings.ToLower(suffix)) {
				return &Rejection{
					Reason:     fmt.Sprintf("Title ends with disallowed suffix %q", suffix),
					Suggestion: fmt.Sprintf("Remove the suffix %q", suffix),
				}
			}
		}
		return nil
	}
}
