// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package rewrite

import "sort"

// Registry groups node-transform rules by (category, node variant) and
// name-translation rules by source identifier, each bucket sorted by
// descending priority so critical structural rewrites run before cosmetic
// ones.
type Registry struct {
	nodeRules map[string][]*NodeRule
	nameRules map[string][]*NameRule
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		nodeRules: make(map[string][]*NodeRule),
		nameRules: make(map[string][]*NameRule),
	}
}

// RegisterNode adds a node-transform rule, defaulting its Priority to its
// Category's band when unset.
func (r *Registry) RegisterNode(rule *NodeRule) {
	if rule.Priority == 0 {
		rule.Priority = rule.Category.Priority()
	}

	key := rule.Variant
	r.nodeRules[key] = append(r.nodeRules[key], rule)
	sortNodeRules(r.nodeRules[key])
}

// RegisterName adds a name-translation rule keyed on its source identifier.
func (r *Registry) RegisterName(rule *NameRule) {
	if rule.Priority == 0 {
		rule.Priority = rule.Category.Priority()
	}

	r.nameRules[rule.SourceName] = append(r.nameRules[rule.SourceName], rule)
	sortNameRules(r.nameRules[rule.SourceName])
}

// NodeRulesFor returns the rules registered for the given node variant tag,
// in descending priority order.
func (r *Registry) NodeRulesFor(variant string) []*NodeRule {
	return r.nodeRules[variant]
}

// NameRulesFor returns the rules keyed on the given source identifier, in
// descending priority order.
func (r *Registry) NameRulesFor(name string) []*NameRule {
	return r.nameRules[name]
}

func sortNodeRules(rules []*NodeRule) {
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Priority > rules[j].Priority })
}

func sortNameRules(rules []*NameRule) {
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Priority > rules[j].Priority })
}
