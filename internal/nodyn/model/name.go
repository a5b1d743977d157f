package model

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/franklaranja/nodyn/internal/codefmt"
	"github.com/franklaranja/nodyn/internal/typeinfo"
)

// VariantName derives the canonical variant name for a payload type:
//
//	int64          Int64
//	pkg.Buffer     Buffer
//	List[string]   List
//	*Buffer        BufferRef
//	[]byte         ByteSlice
//	[4]float64     Float64Array4
//	map[string]int StringToIntMap
//
// Anonymous structs, interfaces, channels, and function types have no
// derivable name. For those it returns an error and the caller must require
// an explicit name.
func VariantName(t typeinfo.Type) (string, error) {
	if t.IsNamed() {
		// Type arguments are dropped on purpose: List[string] and List[int]
		// both derive "List" and collide unless renamed.
		return export(t.Named.Obj().Name()), nil
	}

	switch {
	case t.IsBasic():
		return export(t.Basic.Name()), nil

	case t.IsPointer():
		elem, err := VariantName(*t.Elem)
		if err != nil {
			return "", err
		}
		return elem + "Ref", nil

	case t.IsSlice():
		elem, err := VariantName(*t.Elem)
		if err != nil {
			return "", err
		}
		return elem + "Slice", nil

	case t.IsArray():
		elem, err := VariantName(*t.Elem)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%sArray%d", elem, t.Len), nil

	case t.IsMap():
		key, err := VariantName(*t.Key)
		if err != nil {
			return "", err
		}
		elem, err := VariantName(*t.Elem)
		if err != nil {
			return "", err
		}
		return key + "To" + elem + "Map", nil
	}

	return "", fmt.Errorf("cannot derive a variant name from %s; name it explicitly with TypeNamed", t)
}

// export normalizes a name into an exported Go identifier.
func export(name string) string {
	name = codefmt.NormalizeName(name)
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// unexport lowers the leading rune of an exported identifier.
func unexport(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return strings.ToLower(string(r)) + name[size:]
}
