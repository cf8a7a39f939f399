package board

import (
	"cmp"
	"slices"

	"brainstorm/internal/model"
)

type Status struct {
	Phase             model.Phase
	ParticipantsCount int
	NotesCount        int
	// VotesCount is the number of participants that have allocated points.
	VotesCount int
}

// Snapshot is a consistent copy of the board. Participants and notes keep
// join and creation order.
type Snapshot struct {
	Phase        model.Phase
	AccessCode   string
	Participants []model.Participant
	Notes        []model.Note
	// Votes maps note id -> participant name -> points.
	Votes  map[string]map[string]int
	Scores map[string]int
}

// Result is a note together with its final score.
type Result struct {
	Note  model.Note
	Score int
	Rank  int
}

func (b *Board) Status() Status {
	b.mu.Lock()
	defer b.mu.Unlock()

	return Status{
		Phase:             b.phase,
		ParticipantsCount: len(b.participants),
		NotesCount:        len(b.notes),
		VotesCount:        len(b.votes),
	}
}

func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap := Snapshot{
		Phase:        b.phase,
		AccessCode:   b.accessCode,
		Participants: make([]model.Participant, 0, len(b.participantOrder)),
		Notes:        make([]model.Note, 0, len(b.noteOrder)),
		Votes:        make(map[string]map[string]int),
		Scores:       make(map[string]int, len(b.notes)),
	}
	for _, name := range b.participantOrder {
		snap.Participants = append(snap.Participants, *b.participants[name])
	}
	for _, id := range b.noteOrder {
		snap.Notes = append(snap.Notes, *b.notes[id])
		snap.Scores[id] = b.noteScore(id)
	}
	for name, allocations := range b.votes {
		for noteID, points := range allocations {
			byVoter, ok := snap.Votes[noteID]
			if !ok {
				byVoter = make(map[string]int)
				snap.Votes[noteID] = byVoter
			}
			byVoter[name] = points
		}
	}
	return snap
}

// Results ranks notes by score, highest first. Ties keep creation order.
func (b *Board) Results() []Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	results := make([]Result, 0, len(b.noteOrder))
	for _, id := range b.noteOrder {
		results = append(results, Result{Note: *b.notes[id], Score: b.noteScore(id)})
	}
	slices.SortStableFunc(results, func(a, b Result) int {
		return cmp.Compare(b.Score, a.Score)
	})
	for i := range results {
		results[i].Rank = i + 1
	}
	return results
}
