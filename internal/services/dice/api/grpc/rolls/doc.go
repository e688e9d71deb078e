// Package rolls implements dice.v1.DiceService.
//
// Every Roll call draws from its own source seeded per request, so a seed
// returned to a caller replays the exact same dice. When a roll store is
// configured, rolls are recorded and can be fetched or listed newest first.
// Without a store the history methods fail with HISTORY_DISABLED.
package rolls
