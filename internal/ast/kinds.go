package ast

// NodeKind discriminates the tagged union stored in the node arena.
type NodeKind uint8

const (
	KindInvalid NodeKind = iota

	// Names and literals.
	KindIdent
	KindNumberLit
	KindStringLit
	KindRegexLit
	KindTemplateLit
	KindTrueLit
	KindFalseLit
	KindNullLit
	KindThis
	KindSuper

	// Expressions.
	KindParen
	KindSpread
	KindPropertyAccess
	KindElementAccess
	KindCall
	KindNew
	KindPrefixUnary
	KindPostfixUnary
	KindBinary
	KindConditional
	KindFunctionExpr
	KindArrowFunction
	KindClassExpr
	KindObjectLit
	KindArrayLit
	KindPropertyAssign
	KindShorthandProperty

	// Declarations and statements.
	KindSourceFile
	KindBlock
	KindModuleBlock
	KindVarStatement
	KindVarDeclList
	KindVarDecl
	KindExprStatement
	KindEmptyStatement
	KindIf
	KindDo
	KindWhile
	KindFor
	KindForIn
	KindForOf
	KindReturn
	KindThrow
	KindBreak
	KindContinue
	KindLabeled
	KindTry
	KindSwitch
	KindCaseBlock
	KindCaseClause
	KindDefaultClause
	KindDebugger
	KindFunctionDecl
	KindClassDecl
	KindMethod
	KindConstructor
	KindGetAccessor
	KindSetAccessor
	KindPropertyDecl
	KindEnumDecl
	KindEnumMember
	KindModuleDecl
	KindImportDecl
	KindImportSpecifier
	KindExportDecl
	KindExportSpecifier
	KindExportAssign

	// Markers: participate in the tree but never produce text.
	KindNotEmitted

	kindCount
)

var kindNames = [...]string{
	KindInvalid:           "Invalid",
	KindIdent:             "Ident",
	KindNumberLit:         "NumberLit",
	KindStringLit:         "StringLit",
	KindRegexLit:          "RegexLit",
	KindTemplateLit:       "TemplateLit",
	KindTrueLit:           "TrueLit",
	KindFalseLit:          "FalseLit",
	KindNullLit:           "NullLit",
	KindThis:              "This",
	KindSuper:             "Super",
	KindParen:             "Paren",
	KindSpread:            "Spread",
	KindPropertyAccess:    "PropertyAccess",
	KindElementAccess:     "ElementAccess",
	KindCall:              "Call",
	KindNew:               "New",
	KindPrefixUnary:       "PrefixUnary",
	KindPostfixUnary:      "PostfixUnary",
	KindBinary:            "Binary",
	KindConditional:       "Conditional",
	KindFunctionExpr:      "FunctionExpr",
	KindArrowFunction:     "ArrowFunction",
	KindClassExpr:         "ClassExpr",
	KindObjectLit:         "ObjectLit",
	KindArrayLit:          "ArrayLit",
	KindPropertyAssign:    "PropertyAssign",
	KindShorthandProperty: "ShorthandProperty",
	KindSourceFile:        "SourceFile",
	KindBlock:             "Block",
	KindModuleBlock:       "ModuleBlock",
	KindVarStatement:      "VarStatement",
	KindVarDeclList:       "VarDeclList",
	KindVarDecl:           "VarDecl",
	KindExprStatement:     "ExprStatement",
	KindEmptyStatement:    "EmptyStatement",
	KindIf:                "If",
	KindDo:                "Do",
	KindWhile:             "While",
	KindFor:               "For",
	KindForIn:             "ForIn",
	KindForOf:             "ForOf",
	KindReturn:            "Return",
	KindThrow:             "Throw",
	KindBreak:             "Break",
	KindContinue:          "Continue",
	KindLabeled:           "Labeled",
	KindTry:               "Try",
	KindSwitch:            "Switch",
	KindCaseBlock:         "CaseBlock",
	KindCaseClause:        "CaseClause",
	KindDefaultClause:     "DefaultClause",
	KindDebugger:          "Debugger",
	KindFunctionDecl:      "FunctionDecl",
	KindClassDecl:         "ClassDecl",
	KindMethod:            "Method",
	KindConstructor:       "Constructor",
	KindGetAccessor:       "GetAccessor",
	KindSetAccessor:       "SetAccessor",
	KindPropertyDecl:      "PropertyDecl",
	KindEnumDecl:          "EnumDecl",
	KindEnumMember:        "EnumMember",
	KindModuleDecl:        "ModuleDecl",
	KindImportDecl:        "ImportDecl",
	KindImportSpecifier:   "ImportSpecifier",
	KindExportDecl:        "ExportDecl",
	KindExportSpecifier:   "ExportSpecifier",
	KindExportAssign:      "ExportAssign",
	KindNotEmitted:        "NotEmitted",
}

func (k NodeKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "NodeKind(?)"
}

// IsExpression reports whether nodes of this kind occupy expression
// positions, where the dispatcher additionally runs substitution hooks.
func (k NodeKind) IsExpression() bool {
	return k >= KindIdent && k <= KindShorthandProperty
}

// IsStatement reports whether nodes of this kind occupy statement positions.
func (k NodeKind) IsStatement() bool {
	return k >= KindBlock && k <= KindExportAssign
}
