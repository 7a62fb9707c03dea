package models

// DocumentType tags a course document with its role in the archive.
type DocumentType string

const (
	DocTraineesDataForm  DocumentType = "TRAINEES_DATA_FORM"
	DocTrainerDataForm   DocumentType = "TRAINER_DATA_FORM"
	DocAttendanceForm    DocumentType = "ATTENDANCE_FORM"
	DocGeneralReportForm DocumentType = "GENERAL_REPORT_FORM"
	DocCourseCertificate DocumentType = "COURSE_CERTIFICATE"
)

// DocumentTypes lists every accepted document type tag.
var DocumentTypes = []DocumentType{
	DocTraineesDataForm,
	DocTrainerDataForm,
	DocAttendanceForm,
	DocGeneralReportForm,
	DocCourseCertificate,
}

// IsValid reports whether t is one of the five accepted tags.
func (t DocumentType) IsValid() bool {
	for _, known := range DocumentTypes {
		if t == known {
			return true
		}
	}
	return false
}
