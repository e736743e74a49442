package cashbuddy

import (
	"strings"
	"unicode"
)

// ParseCommand turns a raw input line into a validated Command.
//
// The first word selects the command (case insensitive); the rest of the line
// is its argument string.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, &Error{Kind: ErrEmptyCommand}
	}
	word, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		word, rest = line[:i], line[i:]
	}
	return Parse(strings.ToLower(word), rest)
}

// Parse validates the argument string of the named command.
func Parse(name, args string) (Command, error) {
	args = strings.TrimSpace(args)
	switch name {
	case CmdAdd:
		return parseAdd(args)
	case CmdEdit:
		return parseEdit(args)
	case CmdDelete:
		index, err := ParseIndex(args, name)
		if err != nil {
			return nil, err
		}
		return &DeleteCommand{Index: index}, nil
	case CmdMark:
		index, err := ParseIndex(args, name)
		if err != nil {
			return nil, err
		}
		return &MarkCommand{Index: index}, nil
	case CmdUnmark:
		index, err := ParseIndex(args, name)
		if err != nil {
			return nil, err
		}
		return &UnmarkCommand{Index: index}, nil
	case CmdSetBudget:
		return parseSetBudget(args)
	case CmdList:
		if args != "" {
			return nil, &Error{Kind: ErrUnexpectedArguments, Command: name, Input: args}
		}
		return &ListCommand{}, nil
	case CmdFind:
		return parseFind(args)
	case CmdHelp:
		return &HelpCommand{Topic: strings.ToLower(args)}, nil
	case CmdBye:
		return &ByeCommand{}, nil
	default:
		return nil, &Error{Kind: ErrUnknownCommand, Input: name}
	}
}

func parseAdd(raw string) (Command, error) {
	args := tokenize(CmdAdd, raw, []string{PrefixAmount, PrefixDescription, PrefixCategory})

	rawAmount, err := args.Value(PrefixAmount)
	if err != nil {
		return nil, err
	}
	rawDescription, err := args.Value(PrefixDescription)
	if err != nil {
		return nil, err
	}
	amount, err := ParseAmount(rawAmount, CmdAdd)
	if err != nil {
		return nil, err
	}
	description, err := ParseDescription(rawDescription, CmdAdd)
	if err != nil {
		return nil, err
	}
	rawCategory, present := args.Optional(PrefixCategory)
	category, err := ParseCategory(rawCategory, present, CmdAdd)
	if err != nil {
		return nil, err
	}
	return &AddCommand{Amount: amount, Description: description, Category: category}, nil
}

func parseEdit(raw string) (Command, error) {
	args := tokenize(CmdEdit, raw, AllPrefixes)

	rawIndex, err := args.Value(PrefixID)
	if err != nil {
		return nil, err
	}
	index, err := ParseIndex(rawIndex, CmdEdit)
	if err != nil {
		return nil, err
	}

	cmd := &EditCommand{Index: index}
	if v, ok := args.Optional(PrefixAmount); ok {
		amount, err := ParseAmount(v, CmdEdit)
		if err != nil {
			return nil, err
		}
		cmd.Amount = Set(amount)
	}
	if v, ok := args.Optional(PrefixDescription); ok {
		description, err := ParseDescription(v, CmdEdit)
		if err != nil {
			return nil, err
		}
		cmd.Description = Set(description)
	}
	if v, ok := args.Optional(PrefixCategory); ok {
		category, err := ParseCategory(v, true, CmdEdit)
		if err != nil {
			return nil, err
		}
		cmd.Category = Set(category)
	}
	return cmd, nil
}

func parseSetBudget(raw string) (Command, error) {
	args := tokenize(CmdSetBudget, raw, []string{PrefixAmount})
	rawAmount, err := args.Value(PrefixAmount)
	if err != nil {
		return nil, err
	}
	budget, err := ParseAmount(rawAmount, CmdSetBudget)
	if err != nil {
		return nil, err
	}
	return &SetBudgetCommand{Budget: budget}, nil
}

func parseFind(raw string) (Command, error) {
	args := tokenize(CmdFind, raw, []string{PrefixCategory, PrefixDescription})
	switch args.Len() {
	case 0:
		return nil, &Error{Kind: ErrMissingCriteria, Command: CmdFind}
	case 1:
	default:
		return nil, &Error{Kind: ErrTooManyCriteria, Command: CmdFind, Input: raw}
	}

	if v, ok := args.Optional(PrefixCategory); ok {
		category, err := ParseCategory(v, true, CmdFind)
		if err != nil {
			return nil, err
		}
		return &FindCommand{FindQuery{Category: category}}, nil
	}
	v, _ := args.Optional(PrefixDescription)
	keyword, err := ParseDescription(v, CmdFind)
	if err != nil {
		return nil, err
	}
	return &FindCommand{FindQuery{Description: keyword}}, nil
}
