// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response wording shared by the HTTP handlers and
// middleware of the shortlister backend.
//
// Msg* constants are written into successful responses; Detail* constants
// are the "detail" of error responses produced before the service layer is
// reached. Formats take the values named in their comment.
package app

const (
	// MsgOTPSentFormat takes the normalized email the OTP was sent to.
	MsgOTPSentFormat = "OTP sent to %s. Please verify to complete signup."

	MsgSignupVerified = "Signup verified successfully. You can now login."

	MsgJDSubmitted = "JD submitted and sent to AI"
	MsgJDUpdated   = "JD updated and sent to AI"
	MsgJDDeleted   = "JD deleted successfully"

	// MsgResultsStoredFormat takes the number of stored results.
	MsgResultsStoredFormat = "%d AI results stored successfully"

	MsgUploadCompleted = "File upload process completed."

	// MsgFileDeletedFormat takes the id of the deleted file.
	MsgFileDeletedFormat = "File with ID '%s' deleted successfully."

	// MsgServiceRunning is the body of the root status route.
	MsgServiceRunning = "resume shortlister backend running"
)

const (
	// DetailNotAuthenticated is returned when the bearer credential is
	// missing or malformed.
	DetailNotAuthenticated = "Not authenticated"

	// DetailInvalidJSON is returned when a request body cannot be decoded.
	DetailInvalidJSON = "Invalid JSON was passed"

	// DetailInvalidSkillWeight is returned when a skill weight is not an
	// integer.
	DetailInvalidSkillWeight = "invalid skill weight"

	// DetailInvalidForm is returned when a multipart upload cannot be parsed.
	DetailInvalidForm = "Invalid multipart form"

	// DetailAllUploadsFailed is returned when not a single file of an upload
	// reached the storage backend.
	DetailAllUploadsFailed = "All files failed to upload."
)
