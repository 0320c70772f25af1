// Package cli provides the interactive QuestKeeper terminal client.
//
// It wires configuration, the local document store and the core service
// into a REPL. Signed out, the user can register, log in, recover a
// password or browse the device leaderboard. Signed in, the REPL covers
// quests, the shop and inventory, achievements, the profile and save files.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
