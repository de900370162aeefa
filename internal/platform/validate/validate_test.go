package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string   `json:"name" validate:"required"`
	Age    int      `json:"age" validate:"gte=0,lte=130"`
	Gender string   `json:"gender" validate:"omitempty,oneof=male female other"`
	Tags   []string `json:"tags" validate:"min=1"`
}

func TestDetails(t *testing.T) {
	req := require.New(t)
	err := New().Struct(sample{Age: 200, Gender: "x"})
	req.Error(err)

	details := Details(err)
	req.Equal("is required", details["name"])
	req.Equal("must be less than or equal to 130", details["age"])
	req.Equal("must be one of [male female other]", details["gender"])
	req.Equal("must have at least 1 item(s)", details["tags"])
}

func TestDetails_Valid(t *testing.T) {
	req := require.New(t)
	req.NoError(New().Struct(sample{Name: "Asha", Age: 30, Tags: []string{"a"}}))
	req.Nil(Details(errors.New("boom")))
}
