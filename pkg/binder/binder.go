package binder

import (
	"encoding/json"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/mold/v4"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/storagebrowser/storage/pkg/errcodes"
)

// Binder is a custom struct that implements the Echo Binder interface. It binds
// to a struct, uses mold to clean up the params, and validator to validate
// them.
type Binder struct {
	queryDecoder *schema.Decoder
	conform      *mold.Transformer
	validate     *validator.Validate
}

// New initializes a new Binder instance with the appropriate validation
// functions registered.
func New() (*Binder, error) {
	queryDecoder := schema.NewDecoder()
	queryDecoder.SetAliasTag("query")
	conform := modifiers.New()
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	if err := validate.RegisterValidation(pathrefTag, pathrefValidator); err != nil {
		return nil, errors.WithStack(err)
	}

	return &Binder{queryDecoder, conform, validate}, nil
}

// Bind binds, modifies, and validates payloads against the given struct.
func (b *Binder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	log := logger.FromEchoContext(c)

	switch {
	case req.Method == http.MethodGet || req.Method == http.MethodHead || req.Method == http.MethodDelete:
		if err := b.decodeQuery(i, c.QueryParams()); err != nil {
			return errors.WithStack(err)
		}
	case req.ContentLength == 0:
		return errcodes.EmptyRequestBody()
	case strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON):
		dec := json.NewDecoder(req.Body)
		dec.DisallowUnknownFields()
		defer req.Body.Close()
		if err := dec.Decode(i); err != nil {
			// return better error message on type errors
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				return errcodes.ValidationTypeError(formatUnmarshalTypeError(typeErr))
			}
			if field, ok := unknownField(err); ok {
				return errcodes.UnknownParameter(field)
			}

			log.Err(err).Error("unknown json decode error")

			return errcodes.MalformedPayload()
		}
	default:
		return errcodes.UnsupportedMediaType()
	}

	if err := b.conform.Struct(req.Context(), i); err != nil {
		return errors.WithStack(err)
	}

	if err := defaults.Set(i); err != nil {
		return errors.WithStack(err)
	}

	if err := b.validate.Struct(i); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return errors.WithStack(err)
		}
		msgs := make([]string, 0, len(errs))
		for _, fe := range errs {
			msgs = append(msgs, formatValidationError(fe))
		}
		return errcodes.ValidationError(strings.Join(msgs, "; "))
	}
	return nil
}

func (b *Binder) decodeQuery(i interface{}, params url.Values) error {
	if err := b.queryDecoder.Decode(i, params); err != nil {
		var errs schema.MultiError
		if !errors.As(err, &errs) {
			return errors.WithStack(err)
		}
		for _, err := range errs {
			var convErr schema.ConversionError
			if errors.As(err, &convErr) {
				return errcodes.ValidationTypeError(formatSchemaConversionError(convErr))
			}
			var keyErr schema.UnknownKeyError
			if errors.As(err, &keyErr) {
				return errcodes.UnknownParameter(keyErr.Key)
			}
			return errors.WithStack(err)
		}
	}
	return nil
}

// unknownField pulls the field name out of the decoder's unknown field error.
func unknownField(err error) (string, bool) {
	const prefix = `json: unknown field "`
	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) || !strings.HasSuffix(msg, `"`) {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(msg, prefix), `"`), true
}
