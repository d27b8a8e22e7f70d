package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/hidato/internal/domain"
)

// FS stores candidate puzzles as JSON files bucketed by difficulty, the
// layout the generation and repair collaborators exchange fixtures in.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(id string, d domain.Difficulty) string {
	return filepath.Join(s.dir, d.String(), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	target := s.pathFor(p.ID, p.Difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// decodePuzzle unmarshals a stored puzzle, inferring difficulty from the
// bucket only when the file omits the key. A pointer shim keeps an explicit
// "difficulty": 0 (easy) distinguishable from an absent field.
func decodePuzzle(data []byte, bucket domain.Difficulty) (*domain.Puzzle, error) {
	var stored struct {
		domain.Puzzle
		Difficulty *domain.Difficulty `json:"difficulty"`
	}
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}
	out := stored.Puzzle
	if stored.Difficulty != nil {
		out.Difficulty = *stored.Difficulty
	} else {
		out.Difficulty = bucket
	}
	return &out, nil
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert} {
		path := s.pathFor(id, d)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		return decodePuzzle(data, d)
	}
	return nil, os.ErrNotExist
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert} {
		ents, err := os.ReadDir(filepath.Join(s.dir, d.String()))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, d.String(), e.Name()))
			if err != nil {
				continue
			}
			p, err := decodePuzzle(data, d)
			if err != nil || p.ID == "" {
				continue
			}
			out = append(out, domain.PuzzleMeta{
				ID:         p.ID,
				Name:       p.Name,
				Size:       p.Size,
				Difficulty: p.Difficulty,
				CreatedAt:  p.CreatedAt,
			})
		}
	}
	return out, nil
}
