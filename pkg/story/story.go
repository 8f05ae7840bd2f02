package story

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	domainerrors "github.com/andrejsstepanovs/madlibs/pkg/errors"
	"github.com/andrejsstepanovs/madlibs/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const DefaultCatalogFile = "./data/stories.json"

// Catalog holds the story templates of every genre.
type Catalog struct {
	Adventure []string `json:"adventure" yaml:"adventure" validate:"required,min=1"`
	RomCom    []string `json:"romcom" yaml:"romcom" validate:"required,min=1"`
	Family    []string `json:"family" yaml:"family" validate:"required,min=1"`
	Fantasy   []string `json:"fantasy" yaml:"fantasy" validate:"required,min=1"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Stories returns the templates of genre g.
func (c *Catalog) Stories(g Genre) []string {
	switch g {
	case Adventure:
		return c.Adventure
	case RomCom:
		return c.RomCom
	case Family:
		return c.Family
	case Fantasy:
		return c.Fantasy
	}
	panic(fmt.Sprintf("story: unknown genre %d", int(g)))
}

// Counts returns the number of templates per genre.
func (c *Catalog) Counts() map[string]int {
	counts := make(map[string]int, len(Genres))
	for _, g := range Genres {
		counts[g.String()] = len(c.Stories(g))
	}
	return counts
}

// LoadCatalog reads and decodes the catalog at path. The encoding is picked
// from the file extension; anything but .yaml/.yml is read as JSON.
func LoadCatalog(fs afero.Fs, path string) (*Catalog, error) {
	data, err := utils.LoadTextFromFile(fs, path)
	if err != nil {
		return nil, domainerrors.DataUnavailablef("cannot read %s", path).WithCause(err)
	}

	c, err := DecodeCatalog(data, utils.Extension(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// DecodeCatalog decodes and validates a catalog in the given format
// ("json", "yaml" or "yml").
func DecodeCatalog(data []byte, format string) (*Catalog, error) {
	c := &Catalog{}

	var err error
	switch format {
	case "yaml", "yml":
		err = yaml.Unmarshal(data, c)
	default:
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		return nil, domainerrors.ErrMalformedCatalog.WithCause(err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that every genre has at least one template.
func (c *Catalog) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !domainerrors.As(err, &fieldErrs) {
		return domainerrors.ErrMalformedCatalog.WithCause(err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("genre %q is missing", fe.Field()))
		case "min":
			problems = append(problems, fmt.Sprintf("genre %q has no stories", fe.Field()))
		default:
			problems = append(problems, fmt.Sprintf("genre %q failed %s", fe.Field(), fe.Tag()))
		}
	}
	return domainerrors.MalformedCatalogf("malformed story catalog: %s", strings.Join(problems, "; "))
}
