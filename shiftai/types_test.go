// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package shiftai

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTimestamp_UnmarshalLayouts(t *testing.T) {
	tests := []struct {
		name string
		wire string
		want time.Time
	}{
		{
			"RFC 3339 with zone",
			`"2026-08-30T14:05:00+05:30"`,
			time.Date(2026, 8, 30, 8, 35, 0, 0, time.UTC),
		},
		{
			"RFC 3339 UTC with fraction",
			`"2026-08-30T14:05:00.123456Z"`,
			time.Date(2026, 8, 30, 14, 5, 0, 123456000, time.UTC),
		},
		{
			"zone-less with fraction",
			`"2026-08-30T14:05:00.123456"`,
			time.Date(2026, 8, 30, 14, 5, 0, 123456000, time.UTC),
		},
		{
			"zone-less seconds only",
			`"2026-08-30T14:05:00"`,
			time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(test.wire), &ts); err != nil {
				t.Fatalf("Unmarshal(%s): %v", test.wire, err)
			}
			if !ts.Equal(test.want) {
				t.Errorf("got %v, want %v", ts.Time, test.want)
			}
		})
	}
}

func TestTimestamp_UnmarshalRejectsGarbage(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"30/08/2026"`), &ts); err == nil {
		t.Fatal("expected error for non-ISO-8601 value")
	}
	if err := json.Unmarshal([]byte(`1756562700`), &ts); err == nil {
		t.Fatal("expected error for numeric value")
	}
}

func TestTimestamp_MarshalEmitsUTC(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	ts := NewTimestamp(time.Date(2026, 8, 30, 14, 5, 0, 0, ist))
	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"2026-08-30T08:35:00Z"` {
		t.Errorf("got %s, want %q", data, "2026-08-30T08:35:00Z")
	}
}

func TestSubmissionRequest_UnsetFieldsOmitted(t *testing.T) {
	request := SubmissionRequest{
		Username: ptr("alice"),
		Message:  ptr("hi"),
	}
	data, err := json.Marshal(request)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	encoded := string(data)
	if strings.Contains(encoded, "null") {
		t.Errorf("unset optional fields must be omitted, not null: %s", encoded)
	}
	for _, absent := range []string{"email", "intent", "ragContext", "replyMessageId", "agentData", "senderType"} {
		if strings.Contains(encoded, absent) {
			t.Errorf("unset field %q present in %s", absent, encoded)
		}
	}
}

func TestSubmissionRequest_RoundTrip(t *testing.T) {
	replyID := uuid.New()
	original := SubmissionRequest{
		Username:       ptr("alice"),
		Email:          ptr("alice@example.com"),
		Message:        ptr("thanks"),
		SenderRole:     ptr(SenderBot),
		MessageType:    ptr("TEXT"),
		RAGContext:     ptr("kb article 7"),
		ReplyMessageID: &replyID,
		Metadata:       Metadata{"plan": "pro"},
		AgentData: &AgentData{
			Name:     "support",
			Platform: "web",
		},
	}
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded SubmissionRequest
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if deref(decoded.Username) != "alice" || deref(decoded.Email) != "alice@example.com" {
		t.Errorf("user fields lost: %+v", decoded)
	}
	if deref(decoded.SenderRole) != SenderBot || deref(decoded.ReplyMessageID) != replyID {
		t.Errorf("discriminators lost: %+v", decoded)
	}
	if decoded.AgentData == nil || decoded.AgentData.Name != "support" {
		t.Errorf("agentData lost: %+v", decoded.AgentData)
	}
	if decoded.Metadata["plan"] != "pro" {
		t.Errorf("metadata lost: %+v", decoded.Metadata)
	}
}

func TestDecodeObject_EmptyBody(t *testing.T) {
	response, err := decodeObject[FeedbackResponse](nil, "feedback response")
	if err != nil {
		t.Fatalf("decodeObject: %v", err)
	}
	if response == nil || response.Success != nil {
		t.Errorf("expected zero record, got %+v", response)
	}
}

func TestDecodeObject_MissingRequiredField(t *testing.T) {
	_, err := decodeObject[SubmissionResponse]([]byte(`{"success":true}`), "message submission response")
	if err == nil {
		t.Fatal("expected error for missing messageId")
	}
	if !IsDecode(err) {
		t.Fatalf("expected *DecodeError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "messageId") {
		t.Errorf("error should name the missing field: %v", err)
	}
}

func TestDecodeObject_UnknownFieldsTolerated(t *testing.T) {
	id := uuid.New()
	response, err := decodeObject[SubmissionResponse](
		[]byte(`{"messageId":"`+id.String()+`","someFutureField":123}`),
		"message submission response",
	)
	if err != nil {
		t.Fatalf("decodeObject: %v", err)
	}
	if response.MessageID != id {
		t.Errorf("MessageID = %s, want %s", response.MessageID, id)
	}
}

func TestDecodeObject_MalformedJSON(t *testing.T) {
	_, err := decodeObject[SubmissionResponse]([]byte(`{"messageId":`), "message submission response")
	if !IsDecode(err) {
		t.Fatalf("expected *DecodeError, got %T: %v", err, err)
	}
}

func TestDecodeList_ElementValidation(t *testing.T) {
	id := uuid.New()
	body := []byte(`[{"id":"` + id.String() + `"},{"message":"orphan"}]`)
	_, err := decodeList[Message](body, "message list")
	if !IsDecode(err) {
		t.Fatalf("expected *DecodeError for element missing id, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "element 1") {
		t.Errorf("error should locate the bad element: %v", err)
	}
}

func TestDecodeList_EmptyBody(t *testing.T) {
	records, err := decodeList[Message](nil, "message list")
	if err != nil {
		t.Fatalf("decodeList: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", records)
	}
}

func TestDecodeMap_EmptyBody(t *testing.T) {
	result, err := decodeMap(nil, "session response")
	if err != nil {
		t.Fatalf("decodeMap: %v", err)
	}
	if result == nil || len(result) != 0 {
		t.Errorf("expected empty non-nil map, got %#v", result)
	}
}

func TestRegistrationResponse_RequiresAPIKey(t *testing.T) {
	_, err := decodeObject[RegistrationResponse]([]byte(`{"projectName":"p"}`), "registration response")
	if !IsDecode(err) {
		t.Fatalf("expected *DecodeError for missing apiKey, got %T: %v", err, err)
	}
}
