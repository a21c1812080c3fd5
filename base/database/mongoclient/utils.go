package mongoclient

import (
	"errors"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

var ErrNotStruct = errors.New("selector must be a struct or a pointer to one")

// MakeBsonM builds a filter from the set fields of a document struct. Zero
// values are left out, non-nil pointers are dereferenced so a pointer to a
// zero value still matches on it, and ",inline" structs are flattened.
func MakeBsonM(doc interface{}) (bson.M, error) {
	v := reflect.Indirect(reflect.ValueOf(doc))
	if v.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}
	m := bson.M{}
	return m, collect(v, m)
}

func collect(v reflect.Value, m bson.M) error {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		sf, fv := t.Field(i), v.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		tag, err := bsoncodec.DefaultStructTagParser(sf)
		if err != nil {
			return err
		}

		switch {
		case tag.Skip || fv.IsZero():
		case tag.Inline && fv.Kind() == reflect.Struct:
			if err := collect(fv, m); err != nil {
				return err
			}
		case fv.Kind() == reflect.Ptr:
			m[tag.Name] = fv.Elem().Interface()
		default:
			m[tag.Name] = fv.Interface()
		}
	}
	return nil
}
