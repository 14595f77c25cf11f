// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError

// ledger errors - the message text is part of the RPC interface
var (
	AlreadyClaimed       = ExistsError("account has already claimed")
	AlreadyVested        = ExistsError("account is already vested")
	IndexAlreadyAssigned = ExistsError("cannot reassign an index")
	NoAllocation         = NotFoundError("address has no allocation")
	NotAllocationAddress = PermissionError("sender is not the allocation address")
	NotAmendmentAddress  = PermissionError("address is amended and sender is not the amendment")
	SetupNotElapsed      = PermissionError("cannot claim before end of setup delay")
	Unauthorized         = PermissionError("only owner")
	ArithmeticOverflow   = ProcessError("arithmetic overflow")
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ClaimedPositionNotFound      = NotFoundError("claimed position not found")
	DatabaseIsNotSet             = ProcessError("database is not set")
	IncompatibleDatabaseVersion  = ProcessError("incompatible database version")
	InvalidAddress               = InvalidError("invalid address")
	InvalidAddressChecksum       = InvalidError("invalid address checksum")
	InvalidAllocationRecord      = InvalidError("invalid allocation record")
	InvalidAmount                = InvalidError("invalid amount")
	InvalidClockType             = InvalidError("invalid clock type")
	InvalidCount                 = InvalidError("invalid count")
	InvalidConfiguration         = InvalidError("configuration must return a table")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidIPAddress             = InvalidError("invalid IP address")
	InvalidNonce                 = InvalidError("nonce must be greater than the previous nonce")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPrivateKey            = InvalidError("invalid private key")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidPubKey                = InvalidError("invalid public key")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidSS58Address           = InvalidError("invalid SS58 address")
	InvalidSS58Checksum          = InvalidError("invalid SS58 checksum")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	LengthMismatch               = InvalidError("argument lists have different lengths")
	MissingAuthorisation         = PermissionError("missing authorisation")
	MissingOwner                 = InvalidError("owner address is required")
	MissingParameters            = InvalidError("missing parameters")
	NotAvailableInReadOnlyMode   = PermissionError("not available in read only mode")
	NotInitialised               = NotFoundError("not initialised")
	OwnerMismatch                = InvalidError("configured owner does not match the stored owner")
	PubKeyPositionNotFound       = NotFoundError("public key claim position not found")
	RateLimiting                 = ProcessError("rate limiting")
	SignatureDoesNotMatchCaller  = PermissionError("signature does not match caller")
	TransactionAlreadyFinished   = ProcessError("transaction already finished")
	WrongSignatureRecoveryID     = InvalidError("wrong signature recovery id")
	ZeroVestingAmount            = InvalidError("vesting amount must be greater than zero")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
