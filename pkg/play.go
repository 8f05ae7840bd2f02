package pkg

import (
	"math/rand/v2"

	"github.com/andrejsstepanovs/madlibs/pkg/console"
	domainerrors "github.com/andrejsstepanovs/madlibs/pkg/errors"
	"github.com/andrejsstepanovs/madlibs/pkg/story"
	"go.uber.org/zap"
)

// Round is the outcome of one game.
type Round struct {
	Genre        story.Genre
	Template     string
	Replacements *story.Replacements
	Story        string
}

type replacementJSON struct {
	Placeholder string `json:"placeholder"`
	Value       string `json:"value"`
}

type roundJSON struct {
	Genre        string            `json:"genre"`
	Template     string            `json:"template"`
	Replacements []replacementJSON `json:"replacements"`
	Story        string            `json:"story"`
}

func (r *Round) summary() roundJSON {
	replacements := make([]replacementJSON, 0, r.Replacements.Len())
	r.Replacements.Each(func(token, value string) {
		replacements = append(replacements, replacementJSON{Placeholder: token, Value: value})
	})
	return roundJSON{
		Genre:        r.Genre.String(),
		Template:     r.Template,
		Replacements: replacements,
		Story:        r.Story,
	}
}

type player struct {
	catalog          *story.Catalog
	presenter        *console.Presenter
	rng              *rand.Rand
	genreAttempts    int
	echoReplacements bool
	logger           *zap.Logger
}

func (p *player) play() (*Round, error) {
	genre, err := p.selectGenre()
	if err != nil {
		return nil, err
	}
	p.logger.Debug("Genre selected", zap.Stringer("genre", genre))

	template := story.Pick(p.catalog, genre, p.rng)
	if err := p.presenter.ShowPick(template); err != nil {
		return nil, err
	}

	text, replacements, err := story.Resolve(template, p.presenter)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("Placeholders resolved", zap.Int("count", replacements.Len()))

	if p.echoReplacements {
		if err := p.presenter.ShowReplacements(replacements); err != nil {
			return nil, err
		}
	}
	if err := p.presenter.ShowStory(text); err != nil {
		return nil, err
	}

	return &Round{
		Genre:        genre,
		Template:     template,
		Replacements: replacements,
		Story:        text,
	}, nil
}

func (p *player) selectGenre() (story.Genre, error) {
	for attempt := 1; ; attempt++ {
		reply, err := p.presenter.AskGenre()
		if err != nil {
			return 0, err
		}

		genre, err := story.ParseGenre(reply)
		if err == nil {
			return genre, nil
		}
		if attempt >= p.genreAttempts || !domainerrors.Is(err, domainerrors.ErrInvalidGenre) {
			return 0, err
		}

		p.logger.Debug("Genre rejected", zap.String("input", reply), zap.Int("attempt", attempt))
		if err := p.presenter.ShowProblem(err); err != nil {
			return 0, err
		}
	}
}
