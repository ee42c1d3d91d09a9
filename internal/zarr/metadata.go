package zarr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	v3MetadataFile = "zarr.json"
	v2GroupFile    = ".zgroup"
	v2ArrayFile    = ".zarray"
)

// Metadata is implemented by *ArrayMetadata and *GroupMetadata.
type Metadata interface {
	// Pretty returns the stored metadata document indented with two spaces.
	Pretty() string
	isMetadata()
}

// ArrayMetadata describes an array node.
type ArrayMetadata struct {
	ZarrFormat int
	Shape      []uint64
	DataType   string
	raw        []byte
}

// GroupMetadata describes a group node.
type GroupMetadata struct {
	ZarrFormat int
	raw        []byte
}

func (m *ArrayMetadata) Pretty() string { return prettyJSON(m.raw) }
func (*ArrayMetadata) isMetadata()      {}

func (m *GroupMetadata) Pretty() string { return prettyJSON(m.raw) }
func (*GroupMetadata) isMetadata()      {}

func prettyJSON(raw []byte) string {
	if len(raw) == 0 {
		return "{}"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return buf.String()
}

type v3Document struct {
	ZarrFormat int             `json:"zarr_format"`
	NodeType   string          `json:"node_type"`
	Shape      []uint64        `json:"shape"`
	DataType   json.RawMessage `json:"data_type"`
}

func parseV3(raw []byte) (Metadata, error) {
	var doc v3Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc.ZarrFormat != 3 {
		return nil, fmt.Errorf("unexpected zarr_format %d in %s", doc.ZarrFormat, v3MetadataFile)
	}
	switch doc.NodeType {
	case "group":
		return &GroupMetadata{ZarrFormat: 3, raw: raw}, nil
	case "array":
		dtype, err := v3DataTypeName(doc.DataType)
		if err != nil {
			return nil, err
		}
		return &ArrayMetadata{
			ZarrFormat: 3,
			Shape:      nonNil(doc.Shape),
			DataType:   dtype,
			raw:        raw,
		}, nil
	default:
		return nil, fmt.Errorf("unknown node_type %q", doc.NodeType)
	}
}

// v3DataTypeName accepts both the short string form and the extension
// object form ({"name": ..., "configuration": ...}).
func v3DataTypeName(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("array metadata has no data_type")
	}
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return name, nil
	}
	var ext struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &ext); err != nil || ext.Name == "" {
		return "", fmt.Errorf("unsupported data_type %s", string(raw))
	}
	return ext.Name, nil
}

type v2ArrayDocument struct {
	ZarrFormat int             `json:"zarr_format"`
	Shape      []uint64        `json:"shape"`
	DType      json.RawMessage `json:"dtype"`
}

func parseV2Array(raw []byte) (Metadata, error) {
	var doc v2ArrayDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc.ZarrFormat != 2 {
		return nil, fmt.Errorf("unexpected zarr_format %d in %s", doc.ZarrFormat, v2ArrayFile)
	}
	return &ArrayMetadata{
		ZarrFormat: 2,
		Shape:      nonNil(doc.Shape),
		DataType:   v2DataTypeName(doc.DType),
		raw:        raw,
	}, nil
}

func parseV2Group(raw []byte) (Metadata, error) {
	var doc struct {
		ZarrFormat int `json:"zarr_format"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc.ZarrFormat != 2 {
		return nil, fmt.Errorf("unexpected zarr_format %d in %s", doc.ZarrFormat, v2GroupFile)
	}
	return &GroupMetadata{ZarrFormat: 2, raw: raw}, nil
}

var v2TypeNames = map[string]string{
	"b1":  "bool",
	"i1":  "int8",
	"i2":  "int16",
	"i4":  "int32",
	"i8":  "int64",
	"u1":  "uint8",
	"u2":  "uint16",
	"u4":  "uint32",
	"u8":  "uint64",
	"f2":  "float16",
	"f4":  "float32",
	"f8":  "float64",
	"c8":  "complex64",
	"c16": "complex128",
}

// v2DataTypeName maps numpy-style dtype strings onto v3 names. Types without
// a v3 equivalent keep their v2 spelling.
func v2DataTypeName(raw json.RawMessage) string {
	var dtype string
	if err := json.Unmarshal(raw, &dtype); err != nil {
		return "structured"
	}
	code := strings.TrimLeft(dtype, "<>|=")
	if name, ok := v2TypeNames[code]; ok {
		return name
	}
	return dtype
}

func nonNil(shape []uint64) []uint64 {
	if shape == nil {
		return []uint64{}
	}
	return shape
}
