// Package sheet lays out a character sheet on a template and evaluates it.
//
// Every sheet has an `ability_scores` group holding one input leaf per
// ability and an `abilities` group holding the derived modifiers. Each
// modifier is available two ways:
//
//	abilities.<ability>          (score - 10) / 2 by direct reference
//	abilities.<ability>.mod.mod  the same value found through a Common meta
//	                             that builds the score's path from the
//	                             leaf's own name
//
// Free-form groups from the definition are added under the root as is.
package sheet
