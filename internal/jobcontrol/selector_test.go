package jobcontrol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func stoppedJob(name string) *Job {
	return NewJob(&Process{Forked: true, PID: 1, State: ProcessStopped, Name: name})
}

func TestFindNext_PrefersStoppedOverRunning(t *testing.T) {
	table := NewTable()
	table.SetActive(runningJob("a"))
	table.AddJob(false) // 1: running
	table.SetActive(stoppedJob("b"))
	table.AddJob(false) // 2: stopped

	require.Equal(t, 2, table.findNext(0))
}

func TestFindNext_AmongEqualPreferencePicksHighestIndex(t *testing.T) {
	table := NewTable()
	table.SetActive(stoppedJob("a"))
	table.AddJob(false) // 1: stopped
	table.SetActive(stoppedJob("b"))
	table.AddJob(false) // 2: stopped

	require.Equal(t, 2, table.findNext(0))
	require.Equal(t, 1, table.findNext(2))
}

func TestFindNext_NoCandidatesReturnsZero(t *testing.T) {
	table := NewTable()
	require.Equal(t, 0, table.findNext(0))
}

func TestSetCurrent_ExplicitJobBecomesCurrentOldCurrentBecomesPrevious(t *testing.T) {
	table := NewTable()
	table.SetActive(runningJob("a"))
	table.AddJob(false) // current=1
	table.SetActive(runningJob("b"))
	table.AddJob(false) // current=1, previous=2

	table.SetCurrent(2)

	require.Equal(t, 2, table.Current())
	require.Equal(t, 1, table.Previous())
}

func TestSetCurrent_PanicsOnStaleJobNumber(t *testing.T) {
	table := NewTable()

	require.Panics(t, func() { table.SetCurrent(5) })
}

func TestSetCurrent_ZeroPromotesPrevious(t *testing.T) {
	table := NewTable()
	table.SetActive(runningJob("a"))
	table.AddJob(false)
	table.SetActive(runningJob("b"))
	table.AddJob(true) // current=2, previous=1

	table.SetCurrent(0)

	require.Equal(t, 1, table.Current())
}

func TestOnRemove_RemovingCurrentPromotesPreviousAndRefillsPrevious(t *testing.T) {
	table := NewTable()
	table.SetActive(runningJob("a"))
	table.AddJob(false) // 1
	table.SetActive(runningJob("b"))
	table.AddJob(false) // 2, current=1 previous=2
	table.SetActive(runningJob("c"))
	table.AddJob(true) // 3, current=3 previous=1

	table.Remove(3)

	require.Equal(t, 1, table.Current())
	require.Equal(t, 2, table.Previous())
}

func TestOnRemove_RemovingPreviousRefillsPreviousOnly(t *testing.T) {
	table := NewTable()
	table.SetActive(runningJob("a"))
	table.AddJob(false) // 1
	table.SetActive(runningJob("b"))
	table.AddJob(false) // 2
	table.SetActive(runningJob("c"))
	table.AddJob(true) // 3, current=3 previous=1

	table.Remove(1)

	require.Equal(t, 3, table.Current())
	require.Equal(t, 2, table.Previous())
}
