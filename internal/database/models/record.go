package models

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Both entity families use a single sparse table per family, keyed by
// (entityId, recordType). The recordType column distinguishes an aggregate's
// canonical INFO record from the membership records that share its partition.

// RecordKind is the decoded discriminant of a record row
type RecordKind int

const (
	// RecordKindInfo marks the canonical attribute-bearing record of an aggregate
	RecordKindInfo RecordKind = iota
	// RecordKindMembership marks a per-user membership record
	RecordKindMembership
)

// RecordTypeInfo is the stored discriminant for INFO records
const RecordTypeInfo = "INFO"

const membershipRecordPrefix = "MEMBER:"

// MembershipRecordType builds the stored discriminant for a membership record
func MembershipRecordType(userID string) string {
	return membershipRecordPrefix + userID
}

// ParseRecordType decodes a stored discriminant into its kind. For membership
// records the second return value is the member's user id.
func ParseRecordType(recordType string) (RecordKind, string) {
	if after, ok := strings.CutPrefix(recordType, membershipRecordPrefix); ok {
		return RecordKindMembership, after
	}
	return RecordKindInfo, ""
}

// NewPlaygroupID generates a fresh opaque playgroup identifier
func NewPlaygroupID() string {
	return newRecordID("pg")
}

// NewTeeTimeID generates a fresh opaque tee time identifier
func NewTeeTimeID() string {
	return newRecordID("tt")
}

// newRecordID builds a timestamp+random token, e.g. "pg_1717230000000_9f86d081"
func newRecordID(prefix string) string {
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), hex.EncodeToString(suffix))
}
