// Package board holds the in-memory brainstorming session: who joined, the
// stickies on the wall, how points were spent and which phase the session is
// in. Every exported method is safe for concurrent use; a single mutex guards
// the whole aggregate so quota checks and their writes happen atomically.
package board

import (
	"fmt"
	"math/rand"
	"slices"
	"sync"
	"time"
	"unicode/utf8"

	"brainstorm/internal/model"

	"github.com/google/uuid"
)

const (
	MaxNoteTextLength   = 200
	MaxNotesPerAuthor   = 50
	MaxPointsPerVoter   = 5
	AccessCodeLength    = 6
	accessCodeAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	maxNoteIDGeneration = 8
)

type Board struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time

	phase      model.Phase
	accessCode string

	participants     map[string]*model.Participant
	participantOrder []string
	notes            map[string]*model.Note
	noteOrder        []string
	// votes maps participant name -> note id -> points.
	votes map[string]map[string]int
}

func New(opts ...Option) *Board {
	b := &Board{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.clear()
	return b
}

// clear puts the board back to an empty GENERATING session with a new code.
// Callers hold mu (or own b exclusively).
func (b *Board) clear() {
	b.phase = model.PhaseGenerating
	b.participants = make(map[string]*model.Participant)
	b.participantOrder = nil
	b.notes = make(map[string]*model.Note)
	b.noteOrder = nil
	b.votes = make(map[string]map[string]int)
	b.accessCode = b.generateAccessCode()
}

func (b *Board) generateAccessCode() string {
	code := make([]byte, AccessCodeLength)
	for i := range code {
		code[i] = accessCodeAlphabet[b.rng.Intn(len(accessCodeAlphabet))]
	}
	return string(code)
}

func (b *Board) newNoteID() (string, error) {
	for range maxNoteIDGeneration {
		id, err := uuid.NewRandomFromReader(b.rng)
		if err != nil {
			return "", fmt.Errorf("generate note id: %w", err)
		}
		if _, taken := b.notes[id.String()]; !taken {
			return id.String(), nil
		}
	}
	return "", fmt.Errorf("generate note id: no free id after %d attempts", maxNoteIDGeneration)
}

func (b *Board) requireOrganizer(name string) error {
	p, ok := b.participants[name]
	if !ok || !p.IsOrganizer {
		return ErrNotOrganizer
	}
	return nil
}

func (b *Board) Join(name string, isOrganizer bool) (model.Participant, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.participants[name]; exists {
		return model.Participant{}, ErrNameAlreadyExists
	}

	p := &model.Participant{
		Name:        name,
		IsOrganizer: isOrganizer,
		Color:       model.Palette[b.rng.Intn(len(model.Palette))],
	}
	b.participants[name] = p
	b.participantOrder = append(b.participantOrder, name)
	return *p, nil
}

func (b *Board) AddNote(authorName, text string, x, y float64) (model.Note, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.phase != model.PhaseGenerating {
		return model.Note{}, ErrForbiddenInPhase
	}
	author, ok := b.participants[authorName]
	if !ok {
		return model.Note{}, ErrNotFound
	}
	if utf8.RuneCountInString(text) > MaxNoteTextLength {
		return model.Note{}, ErrNoteTextTooLong
	}
	if b.countNotesBy(authorName) >= MaxNotesPerAuthor {
		return model.Note{}, ErrStickyLimitExceeded
	}

	id, err := b.newNoteID()
	if err != nil {
		return model.Note{}, err
	}
	note := &model.Note{
		ID:         id,
		Text:       text,
		AuthorName: author.Name,
		Color:      author.Color,
		X:          x,
		Y:          y,
		CreatedAt:  b.now().UTC(),
	}
	b.notes[id] = note
	b.noteOrder = append(b.noteOrder, id)
	return *note, nil
}

func (b *Board) countNotesBy(authorName string) int {
	n := 0
	for _, note := range b.notes {
		if note.AuthorName == authorName {
			n++
		}
	}
	return n
}

// MoveNote repositions a sticky. Any caller may move any note before the
// board is finished.
func (b *Board) MoveNote(noteID string, x, y float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.phase == model.PhaseFinished {
		return ErrForbiddenInPhase
	}
	note, ok := b.notes[noteID]
	if !ok {
		return ErrNotFound
	}
	note.X = x
	note.Y = y
	return nil
}

// DeleteNote removes the requester's own sticky along with every point
// allocated to it.
func (b *Board) DeleteNote(noteID, requesterName string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.phase == model.PhaseFinished {
		return ErrForbiddenInPhase
	}
	note, ok := b.notes[noteID]
	if !ok {
		return ErrNotFound
	}
	if note.AuthorName != requesterName {
		return ErrNotAuthor
	}

	delete(b.notes, noteID)
	b.noteOrder = slices.DeleteFunc(b.noteOrder, func(id string) bool { return id == noteID })
	for _, allocations := range b.votes {
		delete(allocations, noteID)
	}
	return nil
}

func (b *Board) ChangePhase(requesterName string, next model.Phase) error {
	_, err := b.AdvancePhase(requesterName, next)
	return err
}

// AdvancePhase is ChangePhase that also reports whether the phase actually
// moved, so callers can react exactly once to a transition.
func (b *Board) AdvancePhase(requesterName string, next model.Phase) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.requireOrganizer(requesterName); err != nil {
		return false, err
	}
	if next == b.phase {
		return false, nil
	}
	if !b.phase.CanTransition(next) {
		return false, ErrInvalidPhaseTransition
	}
	b.phase = next
	return true, nil
}

func (b *Board) SetVote(participantName, noteID string, points int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.phase != model.PhaseVoting {
		return ErrForbiddenInPhase
	}
	if points < 0 || points > MaxPointsPerVoter {
		return ErrVoteLimitExceeded
	}
	if _, ok := b.participants[participantName]; !ok {
		return ErrNotFound
	}
	if _, ok := b.notes[noteID]; !ok {
		return ErrNotFound
	}

	allocations := b.votes[participantName]
	spent := 0
	for id, p := range allocations {
		if id != noteID {
			spent += p
		}
	}
	if spent+points > MaxPointsPerVoter {
		return ErrVoteLimitExceeded
	}

	if allocations == nil {
		allocations = make(map[string]int)
		b.votes[participantName] = allocations
	}
	allocations[noteID] = points
	return nil
}

func (b *Board) NoteScore(noteID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.noteScore(noteID)
}

func (b *Board) noteScore(noteID string) int {
	score := 0
	for _, allocations := range b.votes {
		score += allocations[noteID]
	}
	return score
}

// Reset wipes the session and rotates the access code. Only an organizer of
// the current session may do it.
func (b *Board) Reset(requesterName string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.requireOrganizer(requesterName); err != nil {
		return err
	}
	b.clear()
	return nil
}

func (b *Board) AccessCode() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.accessCode
}

func (b *Board) Phase() model.Phase {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.phase
}

func (b *Board) HasParticipant(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.participants[name]
	return ok
}
