package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/pixelabyss/internal/entity"
)

const (
	keySave        = "pixel-abyss-save"
	keyAfterBattle = "afterBattle"
	prefixArt      = "art:"
	prefixDigest   = "art-digest:"
)

// Art is a saved editor drawing.
type Art struct {
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Palette []string `json:"palette"`
	Pixels  []int    `json:"pixels"`
}

// Digest identifies the drawing's content.
func (a Art) Digest() (uint64, error) {
	raw, err := json.Marshal(a)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(raw), nil
}

// Session offers typed access to the values the game persists.
type Session struct {
	store Store
}

// NewSession wraps a store.
func NewSession(s Store) *Session {
	return &Session{store: s}
}

// Store returns the underlying store.
func (s *Session) Store() Store {
	return s.store
}

// SavePlayer persists the player.
func (s *Session) SavePlayer(ctx context.Context, p *entity.Player) error {
	return s.put(ctx, keySave, p)
}

// LoadPlayer returns the saved player, or ErrNotFound.
func (s *Session) LoadPlayer(ctx context.Context) (*entity.Player, error) {
	var p entity.Player
	if err := s.get(ctx, keySave, &p); err != nil {
		return nil, err
	}
	p.Symbol = '@'
	if p.ArtIDs == nil {
		p.ArtIDs = []string{}
	}
	return &p, nil
}

// MarkAfterBattle records that the player is returning from a battle.
func (s *Session) MarkAfterBattle(ctx context.Context) error {
	return s.store.Save(ctx, keyAfterBattle, []byte("1"))
}

// TakeAfterBattle reports and clears the after-battle flag.
func (s *Session) TakeAfterBattle(ctx context.Context) (bool, error) {
	v, err := s.store.Load(ctx, keyAfterBattle)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := s.store.Delete(ctx, keyAfterBattle); err != nil {
		return false, err
	}
	return string(v) == "1", nil
}

// SaveArt stores a drawing and returns its ID. Saving identical content again
// returns the existing ID instead of a new copy.
func (s *Session) SaveArt(ctx context.Context, a Art) (string, error) {
	digest, err := a.Digest()
	if err != nil {
		return "", err
	}
	digestKey := prefixDigest + strconv.FormatUint(digest, 16)

	existing, err := s.store.Load(ctx, digestKey)
	switch {
	case err == nil:
		return string(existing), nil
	case !errors.Is(err, ErrNotFound):
		return "", err
	}

	id := uuid.NewString()
	if err := s.put(ctx, prefixArt+id, a); err != nil {
		return "", err
	}
	if err := s.store.Save(ctx, digestKey, []byte(id)); err != nil {
		return "", err
	}
	return id, nil
}

// LoadArt returns the drawing saved under id.
func (s *Session) LoadArt(ctx context.Context, id string) (Art, error) {
	var a Art
	err := s.get(ctx, prefixArt+id, &a)
	return a, err
}

func (s *Session) put(ctx context.Context, key string, v any) error {
	b, err := Encode(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.store.Save(ctx, key, b)
}

func (s *Session) get(ctx context.Context, key string, v any) error {
	b, err := s.store.Load(ctx, key)
	if err != nil {
		return err
	}
	if err := Decode(b, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}
