package syntax

import "fmt"

// Kind tags every element of a syntax tree. Token kinds come first, node
// kinds start at NodeKindsBegin.
type Kind uint16

const (
	TOMBSTONE Kind = iota
	EOF

	// Trivia
	WHITESPACE
	COMMENT

	// Literals and identifiers
	IDENT
	INT_NUMBER
	FLOAT_NUMBER
	STRING
	CHAR

	// Keywords
	FN_KW
	LET_KW
	MUT_KW
	REF_KW
	STRUCT_KW
	IF_KW
	ELSE_KW
	TRUE_KW
	FALSE_KW
	RETURN_KW

	// Punctuation
	COLON
	COLONCOLON
	SEMI
	COMMA
	EQ
	EQEQ
	NEQ
	LT
	LTEQ
	GT
	GTEQ
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	BANG
	AMP
	AMPAMP
	PIPE
	PIPEPIPE
	CARET
	L_PAREN
	R_PAREN
	L_CURLY
	R_CURLY
	L_BRACK
	R_BRACK
	DOT
	THIN_ARROW
	UNDERSCORE
	AT

	ERROR_TOKEN

	NodeKindsBegin
)

const (
	SOURCE_FILE Kind = NodeKindsBegin + iota
	FN_DEF
	STRUCT_DEF
	GENERIC_PARAM_LIST
	GENERIC_PARAM
	PARAM_LIST
	PARAM
	RET_TYPE
	FIELD_LIST
	FIELD
	BLOCK
	LET_STMT
	EXPR_STMT
	NAME
	NAME_REF
	PATH
	PATH_SEGMENT
	GENERIC_ARG_LIST

	// Patterns
	BIND_PAT
	TUPLE_PAT
	TUPLE_STRUCT_PAT
	STRUCT_PAT
	FIELD_PAT
	PLACEHOLDER_PAT
	REF_PAT
	LITERAL_PAT

	// Types
	PATH_TYPE
	TUPLE_TYPE
	REF_TYPE
	SLICE_TYPE
	ARRAY_TYPE
	NEVER_TYPE
	PLACEHOLDER_TYPE

	// Expressions
	LITERAL
	PATH_EXPR
	CALL_EXPR
	METHOD_CALL_EXPR
	FIELD_EXPR
	INDEX_EXPR
	PAREN_EXPR
	TUPLE_EXPR
	ARRAY_EXPR
	PREFIX_EXPR
	REF_EXPR
	BIN_EXPR
	BLOCK_EXPR
	IF_EXPR
	RETURN_EXPR
	STRUCT_LIT
	STRUCT_LIT_FIELD_LIST
	STRUCT_LIT_FIELD
	ARG_LIST

	ERROR

	kindsEnd
)

var kindNames = map[Kind]string{
	TOMBSTONE:    "TOMBSTONE",
	EOF:          "EOF",
	WHITESPACE:   "WHITESPACE",
	COMMENT:      "COMMENT",
	IDENT:        "IDENT",
	INT_NUMBER:   "INT_NUMBER",
	FLOAT_NUMBER: "FLOAT_NUMBER",
	STRING:       "STRING",
	CHAR:         "CHAR",
	FN_KW:        "FN_KW",
	LET_KW:       "LET_KW",
	MUT_KW:       "MUT_KW",
	REF_KW:       "REF_KW",
	STRUCT_KW:    "STRUCT_KW",
	IF_KW:        "IF_KW",
	ELSE_KW:      "ELSE_KW",
	TRUE_KW:      "TRUE_KW",
	FALSE_KW:     "FALSE_KW",
	RETURN_KW:    "RETURN_KW",
	COLON:        "COLON",
	COLONCOLON:   "COLONCOLON",
	SEMI:         "SEMI",
	COMMA:        "COMMA",
	EQ:           "EQ",
	EQEQ:         "EQEQ",
	NEQ:          "NEQ",
	LT:           "LT",
	LTEQ:         "LTEQ",
	GT:           "GT",
	GTEQ:         "GTEQ",
	PLUS:         "PLUS",
	MINUS:        "MINUS",
	STAR:         "STAR",
	SLASH:        "SLASH",
	PERCENT:      "PERCENT",
	BANG:         "BANG",
	AMP:          "AMP",
	AMPAMP:       "AMPAMP",
	PIPE:         "PIPE",
	PIPEPIPE:     "PIPEPIPE",
	CARET:        "CARET",
	L_PAREN:      "L_PAREN",
	R_PAREN:      "R_PAREN",
	L_CURLY:      "L_CURLY",
	R_CURLY:      "R_CURLY",
	L_BRACK:      "L_BRACK",
	R_BRACK:      "R_BRACK",
	DOT:          "DOT",
	THIN_ARROW:   "THIN_ARROW",
	UNDERSCORE:   "UNDERSCORE",
	AT:           "AT",
	ERROR_TOKEN:  "ERROR_TOKEN",

	SOURCE_FILE:           "SOURCE_FILE",
	FN_DEF:                "FN_DEF",
	STRUCT_DEF:            "STRUCT_DEF",
	GENERIC_PARAM_LIST:    "GENERIC_PARAM_LIST",
	GENERIC_PARAM:         "GENERIC_PARAM",
	PARAM_LIST:            "PARAM_LIST",
	PARAM:                 "PARAM",
	RET_TYPE:              "RET_TYPE",
	FIELD_LIST:            "FIELD_LIST",
	FIELD:                 "FIELD",
	BLOCK:                 "BLOCK",
	LET_STMT:              "LET_STMT",
	EXPR_STMT:             "EXPR_STMT",
	NAME:                  "NAME",
	NAME_REF:              "NAME_REF",
	PATH:                  "PATH",
	PATH_SEGMENT:          "PATH_SEGMENT",
	GENERIC_ARG_LIST:      "GENERIC_ARG_LIST",
	BIND_PAT:              "BIND_PAT",
	TUPLE_PAT:             "TUPLE_PAT",
	TUPLE_STRUCT_PAT:      "TUPLE_STRUCT_PAT",
	STRUCT_PAT:            "STRUCT_PAT",
	FIELD_PAT:             "FIELD_PAT",
	PLACEHOLDER_PAT:       "PLACEHOLDER_PAT",
	REF_PAT:               "REF_PAT",
	LITERAL_PAT:           "LITERAL_PAT",
	PATH_TYPE:             "PATH_TYPE",
	TUPLE_TYPE:            "TUPLE_TYPE",
	REF_TYPE:              "REF_TYPE",
	SLICE_TYPE:            "SLICE_TYPE",
	ARRAY_TYPE:            "ARRAY_TYPE",
	NEVER_TYPE:            "NEVER_TYPE",
	PLACEHOLDER_TYPE:      "PLACEHOLDER_TYPE",
	LITERAL:               "LITERAL",
	PATH_EXPR:             "PATH_EXPR",
	CALL_EXPR:             "CALL_EXPR",
	METHOD_CALL_EXPR:      "METHOD_CALL_EXPR",
	FIELD_EXPR:            "FIELD_EXPR",
	INDEX_EXPR:            "INDEX_EXPR",
	PAREN_EXPR:            "PAREN_EXPR",
	TUPLE_EXPR:            "TUPLE_EXPR",
	ARRAY_EXPR:            "ARRAY_EXPR",
	PREFIX_EXPR:           "PREFIX_EXPR",
	REF_EXPR:              "REF_EXPR",
	BIN_EXPR:              "BIN_EXPR",
	BLOCK_EXPR:            "BLOCK_EXPR",
	IF_EXPR:               "IF_EXPR",
	RETURN_EXPR:           "RETURN_EXPR",
	STRUCT_LIT:            "STRUCT_LIT",
	STRUCT_LIT_FIELD_LIST: "STRUCT_LIT_FIELD_LIST",
	STRUCT_LIT_FIELD:      "STRUCT_LIT_FIELD",
	ARG_LIST:              "ARG_LIST",
	ERROR:                 "ERROR",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}

// IsTrivia reports whether tokens of this kind carry no syntax.
func (k Kind) IsTrivia() bool {
	return k == WHITESPACE || k == COMMENT
}

func (k Kind) IsToken() bool {
	return k < NodeKindsBegin
}

func (k Kind) IsKeyword() bool {
	return k >= FN_KW && k <= RETURN_KW
}

func (k Kind) IsLiteral() bool {
	switch k {
	case INT_NUMBER, FLOAT_NUMBER, STRING, CHAR, TRUE_KW, FALSE_KW:
		return true
	}
	return false
}
