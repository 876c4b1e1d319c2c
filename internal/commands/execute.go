package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	Toggle func(RowArgs) (Result, error)
	Show   func(ShowArgs) (Result, error)
	Clear  func() (Result, error)
	Export func(ExportArgs) (Result, error)
	Copy   func(RowArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Add(*cmd.Add)
	case TypeToggle:
		if handlers.Toggle == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Toggle(*cmd.Toggle)
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Show(*cmd.Show)
	case TypeClear:
		if handlers.Clear == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Clear()
	case TypeExport:
		if handlers.Export == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Export(*cmd.Export)
	case TypeCopy:
		if handlers.Copy == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Copy(*cmd.Copy)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missingHandler(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
