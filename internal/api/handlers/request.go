package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/m04kA/LashBookingService/internal/domain"
)

// MaxBodyBytes ограничение размера тела запроса
const MaxBodyBytes = 1 << 20

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator общий экземпляр validator с именами полей из json тегов
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// DecodeJSON разбирает тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return err
	}
	return nil
}

// ValidateStruct проверяет теги validate и возвращает бизнес-ошибку по первому нарушению:
// отсутствующие поля и пустые списки дают missing_parameter, остальные нарушения invalid_input.
func ValidateStruct(v interface{}) *domain.Error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.InvalidInput(err.Error())
	}

	fe := verrs[0]
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return domain.MissingParameter(field)
	case "min":
		return domain.NewError(domain.KindMissingParameter,
			fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param()))
	case "email":
		return domain.InvalidInput(fmt.Sprintf("%s must be a valid email", field))
	case "max":
		return domain.InvalidInput(fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
	case "unique":
		return domain.InvalidInput(fmt.Sprintf("%s must not contain duplicates", field))
	case "oneof":
		return domain.InvalidInput(fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
	default:
		return domain.InvalidInput(fmt.Sprintf("%s is invalid", field))
	}
}

// PathInt64 положительный целочисленный параметр пути
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return id, nil
}
