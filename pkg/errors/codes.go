package errors

import "strings"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal     ErrorCode = "COMMON_001"
	ErrCodeBadRequest   ErrorCode = "COMMON_002"
	ErrCodeNotFound     ErrorCode = "COMMON_005"
	ErrCodeValidation   ErrorCode = "COMMON_010"
	ErrCodeCanceled     ErrorCode = "COMMON_017"
	ErrCodeUnknown      ErrorCode = "COMMON_000"
	ErrCodeNotSupported ErrorCode = "COMMON_016"
)

// Molecule Module Error Codes
const (
	ErrCodeMolfileParseFailed   ErrorCode = "MOL_006"
	ErrCodeMolfileUnsupported   ErrorCode = "MOL_003"
	ErrCodeAtomNotInMolecule    ErrorCode = "MOL_016"
	ErrCodeBondOrderUndefined   ErrorCode = "MOL_017"
	ErrCodeElementUnknown       ErrorCode = "MOL_018"
	ErrCodeBondEndpointsInvalid ErrorCode = "MOL_019"
	ErrCodeHydrogenCountUnknown ErrorCode = "MOL_020"
)

// Atom Type Module Error Codes
const (
	ErrCodeAtomTypeNotFound     ErrorCode = "ATM_001"
	ErrCodeAtomTypeCatalogDrift ErrorCode = "ATM_002"
	ErrCodeAtomTypeDuplicate    ErrorCode = "ATM_003"
	ErrCodeRuleSetDuplicate     ErrorCode = "ATM_004"
	ErrCodeRuleSetInvalid       ErrorCode = "ATM_005"
	ErrCodeDescriptorFailed     ErrorCode = "ATM_006"
)

// Short aliases used at call sites.
const (
	CodeOK           = ErrorCode("OK")
	CodeUnknown      = ErrCodeUnknown
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeValidation   = ErrCodeValidation
	CodeCanceled     = ErrCodeCanceled

	CodeMolfileParseFailed   = ErrCodeMolfileParseFailed
	CodeMolfileUnsupported   = ErrCodeMolfileUnsupported
	CodeAtomNotInMolecule    = ErrCodeAtomNotInMolecule
	CodeBondOrderUndefined   = ErrCodeBondOrderUndefined
	CodeElementUnknown       = ErrCodeElementUnknown
	CodeBondEndpointsInvalid = ErrCodeBondEndpointsInvalid
	CodeHydrogenCountUnknown = ErrCodeHydrogenCountUnknown

	CodeAtomTypeNotFound     = ErrCodeAtomTypeNotFound
	CodeAtomTypeCatalogDrift = ErrCodeAtomTypeCatalogDrift
	CodeAtomTypeDuplicate    = ErrCodeAtomTypeDuplicate
	CodeRuleSetDuplicate     = ErrCodeRuleSetDuplicate
	CodeRuleSetInvalid       = ErrCodeRuleSetInvalid
	CodeDescriptorFailed     = ErrCodeDescriptorFailed
)

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:     "internal error",
	ErrCodeBadRequest:   "bad request",
	ErrCodeNotFound:     "resource not found",
	ErrCodeValidation:   "validation failed",
	ErrCodeCanceled:     "operation canceled",
	ErrCodeNotSupported: "not supported",

	ErrCodeMolfileParseFailed:   "failed to parse molfile",
	ErrCodeMolfileUnsupported:   "unsupported molfile content",
	ErrCodeAtomNotInMolecule:    "atom does not belong to the molecule",
	ErrCodeBondOrderUndefined:   "bond order is undefined",
	ErrCodeElementUnknown:       "unknown element",
	ErrCodeBondEndpointsInvalid: "bond endpoints are invalid",
	ErrCodeHydrogenCountUnknown: "hydrogen count is unknown",

	ErrCodeAtomTypeNotFound:     "atom type not found",
	ErrCodeAtomTypeCatalogDrift: "atom type rules and catalog disagree",
	ErrCodeAtomTypeDuplicate:    "duplicate atom type",
	ErrCodeRuleSetDuplicate:     "duplicate rule set",
	ErrCodeRuleSetInvalid:       "invalid rule set",
	ErrCodeDescriptorFailed:     "descriptor calculation failed",
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}

// IsFailureCode reports whether code belongs to the perception failure family:
// catalog drift or an unreadable graph property.  Such codes mean the rules,
// catalog, or input graph are inconsistent and must never be reported as an
// ordinary "unperceived" atom.
func IsFailureCode(code ErrorCode) bool {
	switch code {
	case ErrCodeAtomTypeCatalogDrift, ErrCodeAtomNotInMolecule, ErrCodeBondOrderUndefined:
		return true
	}
	return false
}

//Personal.AI order the ending
