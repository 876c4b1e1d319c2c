package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeToggle Type = "toggle"
	TypeShow   Type = "show"
	TypeClear  Type = "clear"
	TypeExport Type = "export"
	TypeCopy   Type = "copy"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Description string
}

// RowArgs addresses a row of the visible list, 1-based.
type RowArgs struct {
	Row int
}

type ShowArgs struct {
	Filter string
}

type ExportArgs struct {
	Label string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Toggle *RowArgs
	Show   *ShowArgs
	Export *ExportArgs
	Copy   *RowArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, raw[len(parts[0]):])
	case TypeToggle:
		row, err := parseRow("toggle", args)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeToggle, Raw: input, Toggle: &row}, nil
	case TypeShow:
		return parseShow(input, args)
	case TypeClear:
		return Command{Type: TypeClear, Raw: input}, nil
	case TypeExport:
		return Command{Type: TypeExport, Raw: input, Export: &ExportArgs{Label: strings.Join(args, " ")}}, nil
	case TypeCopy:
		row, err := parseRow("copy", args)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeCopy, Raw: input, Copy: &row}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd keeps the description as typed after the first separator so inner
// spacing survives.
func parseAdd(raw string, rest string) (Command, error) {
	description := strings.TrimPrefix(strings.TrimPrefix(rest, " "), "\t")
	if strings.TrimSpace(description) == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a description"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Description: description}}, nil
}

func parseRow(name string, args []string) (RowArgs, error) {
	if len(args) != 1 {
		return RowArgs{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a row number", name)}
	}
	n, err := strconv.Atoi(strings.TrimPrefix(args[0], "#"))
	if err != nil || n < 1 {
		return RowArgs{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s row must be a positive number, got %q", name, args[0])}
	}
	return RowArgs{Row: n}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires one of: all, active, completed"}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Filter: strings.ToLower(args[0])}}, nil
}
