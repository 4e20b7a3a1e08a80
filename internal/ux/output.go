package ux

import (
	"fmt"
	"time"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// PlanCached notes a cache hit for a section plan.
func PlanCached(chapter, section string) {
	fmt.Printf("%s[%s]%s  %splan cached%s   %s / %s\n",
		Dim, timestamp(), Reset, Dim, Reset, chapter, section)
}

// PlanGenerating announces a planning call to the generation service.
func PlanGenerating(chapter, section string) {
	fmt.Printf("%s[%s]%s  %splanning%s      %s / %s\n",
		Dim, timestamp(), Reset, Cyan, Reset, chapter, section)
}

// PlanSkipped reports a section dropped from this run.
func PlanSkipped(chapter, section string, err error) {
	fmt.Printf("%s[%s]%s  %s✗ plan skipped%s %s / %s: %v\n",
		Dim, timestamp(), Reset, Red, Reset, chapter, section, err)
}

// RoundHeader prints a timestamped round header.
func RoundHeader(round, maxRounds, jobs int) {
	fmt.Printf("\n%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
	fmt.Printf("%s[%s]%s  %sRound %d/%d: %d job(s) to submit%s\n",
		Dim, timestamp(), Reset, Bold, round, maxRounds, jobs, Reset)
	fmt.Printf("%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
}

// BatchCreated reports the external batch job id for a round.
func BatchCreated(round int, batchID string) {
	fmt.Printf("%s[%s]%s  round %d: batch job %s\n",
		Dim, timestamp(), Reset, round, batchID)
}

// BatchProgress reports a poll observation.
func BatchProgress(round int, status string, completed, total int64) {
	if total > 0 {
		fmt.Printf("%s[%s]%s  round %d: %s (%d/%d requests completed)\n",
			Dim, timestamp(), Reset, round, status, completed, total)
		return
	}
	fmt.Printf("%s[%s]%s  round %d: %s\n", Dim, timestamp(), Reset, round, status)
}

// ReusingResults notes that a round's stored results are being reused
// instead of resubmitting.
func ReusingResults(round int, path string) {
	fmt.Printf("%s[%s]%s  %s↻ round %d: reusing existing results%s %s\n",
		Dim, timestamp(), Reset, Yellow, round, Reset, path)
}

// RoundIncomplete reports how many jobs still need a continuation.
func RoundIncomplete(round, incomplete int) {
	fmt.Printf("%s[%s]%s  %safter round %d, %d job(s) still incomplete%s\n",
		Dim, timestamp(), Reset, Yellow, round, incomplete, Reset)
}

// JobPartial warns that a job ran out of rounds and is finalized with
// partial content.
func JobPartial(customID, reason string, rounds int) {
	fmt.Printf("%s[%s]%s  %s⚠ partial%s %s after %d round(s) (%s); keeping accumulated text\n",
		Dim, timestamp(), Reset, Yellow, Reset, customID, rounds, reason)
}

// ScaffoldCreated reports a skeleton file written by init.
func ScaffoldCreated(path string) {
	fmt.Printf("%s[%s]%s  %s✓ created%s %s\n", Dim, timestamp(), Reset, Green, Reset, path)
}

// ScaffoldSkipped reports a skeleton file left alone because it exists.
func ScaffoldSkipped(path string) {
	fmt.Printf("%s[%s]%s  %sskipped%s   %s (already exists)\n", Dim, timestamp(), Reset, Dim, Reset, path)
}

// ChapterWritten reports one assembled chapter file.
func ChapterWritten(path string) {
	fmt.Printf("%s[%s]%s  %s✓%s wrote %s\n", Dim, timestamp(), Reset, Green, Reset, path)
}

// RunDone prints the final completed/partial tally.
func RunDone(completed, partial int) {
	if partial == 0 {
		fmt.Printf("\n%s[%s]%s  %s%s══ %d job(s) complete ══%s\n\n",
			Dim, timestamp(), Reset, Bold, Green, completed, Reset)
		return
	}
	fmt.Printf("\n%s[%s]%s  %s%s══ %d complete, %d partial ══%s\n\n",
		Dim, timestamp(), Reset, Bold, Yellow, completed, partial, Reset)
}
