package diag

import "fmt"

// Code is a compact, stable identifier for a diagnostic class.
// Ranges are reserved per pipeline stage so that output stays sortable
// and tools can filter by origin: 1xxx lexical, 2xxx syntactic,
// 3xxx semantic, 9xxx host-internal.
type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInvalidToken Code = 1001

	// Синтаксические
	SynParseError Code = 2001

	// Семантические
	SemaTypeError Code = 3001
	SemaSoftError Code = 3002

	// Внутренние ошибки хост-компилятора
	HostInternal Code = 9001
)

func (c Code) String() string {
	return fmt.Sprintf("CDT%04d", uint16(c))
}
