package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Сканирование шаблона
	ScanInfo                  Code = 1000
	ScanStrayClosingDelimiter Code = 1001
	ScanUnterminatedTag       Code = 1002
	ScanIncompleteConsumption Code = 1003

	// Реконструкция
	RenderInfo        Code = 2000
	RenderSinkFailure Code = 2001

	// I/O
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
	IOWriteError    Code = 4002

	// Проект / манифест
	ProjectInfo            Code = 5000
	ProjectManifestInvalid Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	ScanInfo:                  "scan info",
	ScanStrayClosingDelimiter: "closing delimiter without a matching opening token",
	ScanUnterminatedTag:       "tag is never closed",
	ScanIncompleteConsumption: "input left unscanned after the final span",

	RenderInfo:        "render info",
	RenderSinkFailure: "output sink failed",

	IOInfo:          "I/O info",
	IOLoadFileError: "failed to load file",
	IOWriteError:    "failed to write output",

	ProjectInfo:            "project info",
	ProjectManifestInvalid: "invalid project manifest",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SCAN%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("RNDR%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
