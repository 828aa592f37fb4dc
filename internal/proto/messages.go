package proto

import (
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"
)

// Login response keys.
const (
	KeyAccessToken = "access_token"
	KeyActorName   = "actor_name"
	// KeyFileName is sent as response metadata with SubmitGrievance.
	KeyFileName = "file-name"
	// KeyDegraded is sent as response metadata with SubmitGrievance.
	KeyDegraded = "degraded"
)

func NewLoginResponse(accessToken, actorName string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		KeyAccessToken: structpb.NewStringValue(accessToken),
		KeyActorName:   structpb.NewStringValue(actorName),
	}}
}

func ParseLoginResponse(s *structpb.Struct) (accessToken, actorName string) {
	return s.GetFields()[KeyAccessToken].GetStringValue(), s.GetFields()[KeyActorName].GetStringValue()
}

// FormToStruct encodes a flat form.
func FormToStruct(form map[string]string) *structpb.Struct {
	fields := make(map[string]*structpb.Value, len(form))
	for k, v := range form {
		fields[k] = structpb.NewStringValue(v)
	}
	return &structpb.Struct{Fields: fields}
}

// StructToForm decodes a flat form. Numbers and booleans are formatted,
// nested values are ignored.
func StructToForm(s *structpb.Struct) map[string]string {
	form := make(map[string]string, len(s.GetFields()))
	for k, v := range s.GetFields() {
		switch x := v.GetKind().(type) {
		case *structpb.Value_StringValue:
			form[k] = x.StringValue
		case *structpb.Value_NumberValue:
			form[k] = strconv.FormatFloat(x.NumberValue, 'f', -1, 64)
		case *structpb.Value_BoolValue:
			form[k] = strconv.FormatBool(x.BoolValue)
		}
	}
	return form
}

// ListsToStruct encodes catalog lists keyed by section header.
func ListsToStruct(lists map[string][]string) *structpb.Struct {
	fields := make(map[string]*structpb.Value, len(lists))
	for k, items := range lists {
		values := make([]*structpb.Value, 0, len(items))
		for _, it := range items {
			values = append(values, structpb.NewStringValue(it))
		}
		fields[k] = structpb.NewListValue(&structpb.ListValue{Values: values})
	}
	return &structpb.Struct{Fields: fields}
}

// StructToLists decodes catalog lists. Non-string items are skipped.
func StructToLists(s *structpb.Struct) map[string][]string {
	lists := make(map[string][]string, len(s.GetFields()))
	for k, v := range s.GetFields() {
		items := []string{}
		for _, it := range v.GetListValue().GetValues() {
			if sv, ok := it.GetKind().(*structpb.Value_StringValue); ok {
				items = append(items, sv.StringValue)
			}
		}
		lists[k] = items
	}
	return lists
}
