// Package comp defines the closed universe of node types produced by the
// component-description grammar. Each grammar rule or labeled alternative
// maps to exactly one NodeType, and a NodeType never changes after process
// start: its wire name and its declared label list are fixed data.
package comp

import "fmt"

type NodeType int

const (
	// TokenType marks terminal tokens. It is not part of the rule set and
	// never resolves to a host type; hosts wrap tokens through a separate
	// conversion.
	TokenType NodeType = iota

	NodeProg
	NodeComponentDefineNew
	NodeComponentDefineCopy
	NodeTraceBlock
	NodeTraceBlockCopy
	NodeComponentParameterSet
	NodeComponentDefineParameters
	NodeComponentSetParameters
	NodeComponentOutParameters
	NodeComponentParameters
	NodeComponentParameterSymbol
	NodeComponentParameterDoubleArray
	NodeComponentParameterDouble
	NodeComponentParameterVector
	NodeComponentParameterInteger
	NodeComponentParameterIntegerArray
	NodeComponentParameterString
	NodeShareBlock
	NodeShareBlockCopy
	NodeDisplayBlockCopy
	NodeDisplayBlock
	NodeComponentRef
	NodeCoords
	NodeReference
	NodeDependency
	NodeDeclareBlock
	NodeDeclareBlockCopy
	NodeUservars
	NodeInitializeBlock
	NodeInitializeBlockCopy
	NodeSaveBlockCopy
	NodeSaveBlock
	NodeFinallyBlock
	NodeFinallyBlockCopy
	NodeMetadata
	NodeCategory
	NodeInitializerlist
	NodeAssignment
	NodeExpressionBinaryMod
	NodeExpressionBinaryLess
	NodeExpressionBinaryGreater
	NodeExpressionBinaryLessEqual
	NodeExpressionArrayAccess
	NodeExpressionBinaryLogic
	NodeExpressionInteger
	NodeExpressionBinaryRightShift
	NodeExpressionMyself
	NodeExpressionPrevious
	NodeExpressionIdentifier
	NodeExpressionStructAccess
	NodeExpressionFunctionCall
	NodeExpressionBinaryMD
	NodeExpressionString
	NodeExpressionGrouping
	NodeExpressionExponentiation
	NodeExpressionBinaryLeftShift
	NodeExpressionBinaryGreaterEqual
	NodeExpressionZero
	NodeExpressionUnaryPM
	NodeExpressionTrinaryLogic
	NodeExpressionFloat
	NodeExpressionPointerAccess
	NodeExpressionBinaryEqual
	NodeExpressionBinaryPM
	NodeExpressionUnaryLogic
	NodeShell
	NodeSearchPath
	NodeSearchShell
	NodeUnparsedBlock

	typeCount
)

var binaryLabels = []string{"left", "right"}

type typeEntry struct {
	name   string
	labels []string
}

// Wire names preserve the grammar's own spelling. A host runtime must
// declare one type per entry under exactly this name; any mismatch is a
// packaging defect surfaced at first use.
var typeTab = [typeCount]typeEntry{
	TokenType:                          {name: "Token"},
	NodeProg:                           {name: "Prog"},
	NodeComponentDefineNew:             {name: "ComponentDefineNew"},
	NodeComponentDefineCopy:            {name: "ComponentDefineCopy"},
	NodeTraceBlock:                     {name: "TraceBlock"},
	NodeTraceBlockCopy:                 {name: "TraceBlockCopy"},
	NodeComponentParameterSet:          {name: "Component_parameter_set"},
	NodeComponentDefineParameters:      {name: "Component_define_parameters"},
	NodeComponentSetParameters:         {name: "Component_set_parameters"},
	NodeComponentOutParameters:         {name: "Component_out_parameters"},
	NodeComponentParameters:            {name: "Component_parameters"},
	NodeComponentParameterSymbol:       {name: "ComponentParameterSymbol"},
	NodeComponentParameterDoubleArray:  {name: "ComponentParameterDoubleArray"},
	NodeComponentParameterDouble:       {name: "ComponentParameterDouble"},
	NodeComponentParameterVector:       {name: "ComponentParameterVector"},
	NodeComponentParameterInteger:      {name: "ComponentParameterInteger"},
	NodeComponentParameterIntegerArray: {name: "ComponentParameterIntegerArray"},
	NodeComponentParameterString:       {name: "ComponentParameterString"},
	NodeShareBlock:                     {name: "ShareBlock"},
	NodeShareBlockCopy:                 {name: "ShareBlockCopy"},
	NodeDisplayBlockCopy:               {name: "DisplayBlockCopy"},
	NodeDisplayBlock:                   {name: "DisplayBlock"},
	NodeComponentRef:                   {name: "Component_ref"},
	NodeCoords:                         {name: "Coords"},
	NodeReference:                      {name: "Reference"},
	NodeDependency:                     {name: "Dependency"},
	NodeDeclareBlock:                   {name: "DeclareBlock"},
	NodeDeclareBlockCopy:               {name: "DeclareBlockCopy"},
	NodeUservars:                       {name: "Uservars"},
	NodeInitializeBlock:                {name: "InitializeBlock"},
	NodeInitializeBlockCopy:            {name: "InitializeBlockCopy"},
	NodeSaveBlockCopy:                  {name: "SaveBlockCopy"},
	NodeSaveBlock:                      {name: "SaveBlock"},
	NodeFinallyBlock:                   {name: "FinallyBlock"},
	NodeFinallyBlockCopy:               {name: "FinallyBlockCopy"},
	NodeMetadata:                       {name: "Metadata", labels: []string{"mime", "name"}},
	NodeCategory:                       {name: "Category"},
	NodeInitializerlist:                {name: "Initializerlist"},
	NodeAssignment:                     {name: "Assignment"},
	NodeExpressionBinaryMod:            {name: "ExpressionBinaryMod", labels: binaryLabels},
	NodeExpressionBinaryLess:           {name: "ExpressionBinaryLess", labels: binaryLabels},
	NodeExpressionBinaryGreater:        {name: "ExpressionBinaryGreater", labels: binaryLabels},
	NodeExpressionBinaryLessEqual:      {name: "ExpressionBinaryLessEqual", labels: binaryLabels},
	NodeExpressionArrayAccess:          {name: "ExpressionArrayAccess"},
	NodeExpressionBinaryLogic:          {name: "ExpressionBinaryLogic", labels: binaryLabels},
	NodeExpressionInteger:              {name: "ExpressionInteger"},
	NodeExpressionBinaryRightShift:     {name: "ExpressionBinaryRightShift", labels: binaryLabels},
	NodeExpressionMyself:               {name: "ExpressionMyself"},
	NodeExpressionPrevious:             {name: "ExpressionPrevious"},
	NodeExpressionIdentifier:           {name: "ExpressionIdentifier"},
	NodeExpressionStructAccess:         {name: "ExpressionStructAccess"},
	NodeExpressionFunctionCall:         {name: "ExpressionFunctionCall"},
	NodeExpressionBinaryMD:             {name: "ExpressionBinaryMD", labels: binaryLabels},
	NodeExpressionString:               {name: "ExpressionString"},
	NodeExpressionGrouping:             {name: "ExpressionGrouping"},
	NodeExpressionExponentiation:       {name: "ExpressionExponentiation", labels: []string{"base", "exponent"}},
	NodeExpressionBinaryLeftShift:      {name: "ExpressionBinaryLeftShift", labels: binaryLabels},
	NodeExpressionBinaryGreaterEqual:   {name: "ExpressionBinaryGreaterEqual", labels: binaryLabels},
	NodeExpressionZero:                 {name: "ExpressionZero"},
	NodeExpressionUnaryPM:              {name: "ExpressionUnaryPM"},
	NodeExpressionTrinaryLogic:         {name: "ExpressionTrinaryLogic", labels: []string{"test", "true", "false"}},
	NodeExpressionFloat:                {name: "ExpressionFloat"},
	NodeExpressionPointerAccess:        {name: "ExpressionPointerAccess"},
	NodeExpressionBinaryEqual:          {name: "ExpressionBinaryEqual", labels: binaryLabels},
	NodeExpressionBinaryPM:             {name: "ExpressionBinaryPM", labels: binaryLabels},
	NodeExpressionUnaryLogic:           {name: "ExpressionUnaryLogic"},
	NodeShell:                          {name: "Shell"},
	NodeSearchPath:                     {name: "SearchPath"},
	NodeSearchShell:                    {name: "SearchShell"},
	NodeUnparsedBlock:                  {name: "Unparsed_block"},
}

var typeByName = map[string]NodeType{}

func init() {
	for t := NodeType(0); t < typeCount; t++ {
		name := typeTab[t].name
		if name == "" {
			panic(fmt.Sprintf("node type %v has no name", int(t)))
		}
		if _, dup := typeByName[name]; dup {
			panic(fmt.Sprintf("duplicated node type name: %v", name))
		}
		typeByName[name] = t
	}
}

func (t NodeType) Name() string {
	if t < 0 || t >= typeCount {
		return fmt.Sprintf("unknown(%v)", int(t))
	}
	return typeTab[t].name
}

func (t NodeType) String() string {
	return t.Name()
}

// Labels returns the label names the grammar declares for t, in declaration
// order. The result is shared; callers must not modify it.
func (t NodeType) Labels() []string {
	if t < 0 || t >= typeCount {
		return nil
	}
	return typeTab[t].labels
}

// HasLabel reports whether t declares a label named name.
func (t NodeType) HasLabel(name string) bool {
	for _, l := range t.Labels() {
		if l == name {
			return true
		}
	}
	return false
}

// TypeOf looks up a rule node type by its wire name. Token nodes are not
// rule types, so "Token" does not resolve.
func TypeOf(name string) (NodeType, bool) {
	t, ok := typeByName[name]
	if !ok || t == TokenType {
		return 0, false
	}
	return t, true
}

// Types returns every rule node type in a stable order.
func Types() []NodeType {
	ts := make([]NodeType, 0, typeCount-1)
	for t := NodeType(1); t < typeCount; t++ {
		ts = append(ts, t)
	}
	return ts
}
