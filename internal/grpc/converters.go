package grpc

import (
	"encoding/json"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Belphemur/ReelRate/internal/client"
)

// posterSize is the TMDB image size used for poster_url fields.
const posterSize = "w500"

// toStruct converts a model to a Struct through its JSON form, so field names
// match the TMDB schema.
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	addPosterURLs(out)
	return out, nil
}

// addPosterURLs sets poster_url next to every non-empty poster_path, on the
// document itself and on each entry of its results list.
func addPosterURLs(st *structpb.Struct) {
	setPosterURL(st)
	results := st.GetFields()["results"].GetListValue()
	for _, v := range results.GetValues() {
		setPosterURL(v.GetStructValue())
	}
}

func setPosterURL(st *structpb.Struct) {
	if st == nil {
		return
	}
	path := st.GetFields()["poster_path"].GetStringValue()
	if path == "" {
		return
	}
	st.Fields["poster_url"] = structpb.NewStringValue(client.PosterURL(path, posterSize))
}

// intField reads an integral number field. present is false when the field is missing.
func intField(req *structpb.Struct, name string) (value int, present bool, err error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0, false, nil
	}
	num, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, true, fmt.Errorf("field %q must be a number", name)
	}
	if num.NumberValue != math.Trunc(num.NumberValue) || math.Abs(num.NumberValue) > math.MaxInt32 {
		return 0, true, fmt.Errorf("field %q must be an integer", name)
	}
	return int(num.NumberValue), true, nil
}

// numberField reads a number field. present is false when the field is missing.
func numberField(req *structpb.Struct, name string) (value float64, present bool, err error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0, false, nil
	}
	num, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, true, fmt.Errorf("field %q must be a number", name)
	}
	return num.NumberValue, true, nil
}
