package models

import (
	"strconv"
	"strings"
)

// DocTypeOption is one entry of the fixed document-type enumeration. The
// label keeps the ordinal prefix the office has always used on its paper
// folders (e.g. "1.ใบสมัครงาน"); the NeedsStatus flag replaces the old habit
// of parsing that prefix out of the label everywhere a rule was needed.
type DocTypeOption struct {
	Code        int    `json:"code"`
	Label       string `json:"label"`
	NeedsStatus bool   `json:"needs_status"`
}

// DocumentTypes is the fixed enumeration shared by every form and filter.
// Codes 6-10 are issued, numbered papers that can be cancelled and re-issued,
// so they carry a running number and an active/cancelled status.
var DocumentTypes = []DocTypeOption{
	{Code: 1, Label: "1.ใบสมัครงาน", NeedsStatus: false},            // Application form
	{Code: 2, Label: "2.สำเนาบัตรประชาชน", NeedsStatus: false},      // ID card copy
	{Code: 3, Label: "3.สำเนาทะเบียนบ้าน", NeedsStatus: false},      // House registration copy
	{Code: 4, Label: "4.วุฒิการศึกษา", NeedsStatus: false},          // Education credential
	{Code: 5, Label: "5.ใบรับรองแพทย์", NeedsStatus: false},         // Medical certificate
	{Code: 6, Label: "6.หนังสือรับรองการทำงาน", NeedsStatus: true},  // Certificate of employment
	{Code: 7, Label: "7.หนังสือรับรองเงินเดือน", NeedsStatus: true}, // Salary certificate
	{Code: 8, Label: "8.สัญญาจ้าง", NeedsStatus: true},              // Employment contract
	{Code: 9, Label: "9.หนังสือค้ำประกัน", NeedsStatus: true},       // Guarantee letter
	{Code: 10, Label: "10.หนังสือเตือน", NeedsStatus: true},         // Warning letter
}

// Senders and Receivers are the parties a document moves between.
var Senders = []string{
	"HR",
	"Registry",
	"Division Head",
	"Employee",
}

var Receivers = []string{
	"HR",
	"Registry",
	"Head Office",
	"Employee",
}

// Divisions an employee can belong to.
var Divisions = []string{
	"Administration",
	"Finance",
	"Human Resources",
	"Operations",
	"Academic",
}

// EmployeeStatuses for the employee record itself.
var EmployeeStatuses = []string{
	"Active",
	"Inactive",
}

// FindDocType looks up a document-type option by its label.
func FindDocType(label string) (DocTypeOption, bool) {
	for _, opt := range DocumentTypes {
		if opt.Label == label {
			return opt, true
		}
	}
	return DocTypeOption{}, false
}

// NeedsStatus reports whether doc_number/status are meaningful for the given
// doc_type. Known labels use the enumeration's flag; labels that are no
// longer in the enumeration (old rows) fall back to the ordinal prefix before
// the first "." and the historical [6,10] range.
func NeedsStatus(docType string) bool {
	if opt, ok := FindDocType(docType); ok {
		return opt.NeedsStatus
	}
	code := DocTypeCode(docType)
	return code >= 6 && code <= 10
}

// DocTypeCode parses the integer prefix before the first "." of a doc_type
// label. Returns 0 when the label has no parseable prefix.
func DocTypeCode(docType string) int {
	prefix, _, found := strings.Cut(docType, ".")
	if !found {
		return 0
	}
	code, err := strconv.Atoi(strings.TrimSpace(prefix))
	if err != nil {
		return 0
	}
	return code
}

// IsValidDocType reports whether the label is part of the fixed enumeration.
func IsValidDocType(label string) bool {
	_, ok := FindDocType(label)
	return ok
}

// IsValidDivision reports whether the division is part of the fixed enumeration.
func IsValidDivision(division string) bool {
	return contains(Divisions, division)
}

// IsValidEmployeeStatus reports whether the status is part of the fixed enumeration.
func IsValidEmployeeStatus(status string) bool {
	return contains(EmployeeStatuses, status)
}

// IsValidSender allows the empty string; sender is optional on the form.
func IsValidSender(sender string) bool {
	return sender == "" || contains(Senders, sender)
}

// IsValidReceiver allows the empty string; receiver is optional on the form.
func IsValidReceiver(receiver string) bool {
	return receiver == "" || contains(Receivers, receiver)
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
