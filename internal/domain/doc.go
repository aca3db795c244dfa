// Package domain contains the core Yahtzee model: dice, scorecards, the
// scoring engine and the turn-by-turn session.
//
// The domain is presentation- and persistence-agnostic: it does not depend on
// YAML parsing, terminals, or the filesystem. Infra/adapters map into/from
// these types.
package domain
