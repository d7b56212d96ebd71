package cchooks

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ReadPayloadSuite struct {
	suite.Suite
}

func TestReadPayloadSuite(t *testing.T) {
	suite.Run(t, new(ReadPayloadSuite))
}

func (s *ReadPayloadSuite) TestParsesObject() {
	p, err := ReadPayload(strings.NewReader(`{"session_id": "s1"}`))

	s.Require().NoError(err)
	s.Assert().True(p.HasField("session_id"))
}

func (s *ReadPayloadSuite) TestTrimsSurroundingWhitespace() {
	p, err := ReadPayload(strings.NewReader("\n\t  {\"a\": 1}  \n"))

	s.Require().NoError(err)
	s.Assert().Equal(`{"a": 1}`, string(p.Raw()))
}

func (s *ReadPayloadSuite) TestRejectsNonObjectInput() {
	tests := map[string]string{
		"empty":                 "",
		"whitespace only":       "  \n\t ",
		"malformed":             `{not json}`,
		"json string":           `"hello"`,
		"json array":            `[1, 2, 3]`,
		"json number":           `42`,
		"json null":             `null`,
		"double-encoded object": `"{\"session_id\": \"s1\"}"`,
	}

	for name, input := range tests {
		s.Run(name, func() {
			_, err := ReadPayload(strings.NewReader(input))

			var perr *ParseError
			s.Require().ErrorAs(err, &perr)
			s.Assert().Contains(perr.Error(), "input must be a JSON object")
		})
	}
}

func (s *ReadPayloadSuite) TestMalformedInputWrapsErrInvalidJSON() {
	_, err := ReadPayload(strings.NewReader(`{broken`))

	s.Assert().ErrorIs(err, ErrInvalidJSON)
}

func (s *ReadPayloadSuite) TestParseFailureIsNotValidationFailure() {
	_, err := ReadPayload(strings.NewReader(""))

	var verr *ValidationError
	s.Assert().False(errors.As(err, &verr))
}

type PayloadFieldsSuite struct {
	suite.Suite
	payload Payload
}

func (s *PayloadFieldsSuite) SetupTest() {
	var err error
	s.payload, err = ParsePayload([]byte(`{
		"session_id": "s1",
		"empty": "",
		"nothing": null,
		"count": 7,
		"active": true,
		"tool_input": {"command": "ls"}
	}`))
	s.Require().NoError(err)
}

func TestPayloadFieldsSuite(t *testing.T) {
	suite.Run(t, new(PayloadFieldsSuite))
}

func (s *PayloadFieldsSuite) TestHasField() {
	tests := map[string]struct {
		path   string
		exists bool
	}{
		"string value":       {"session_id", true},
		"empty string value": {"empty", true},
		"null value":         {"nothing", true},
		"object value":       {"tool_input", true},
		"absent key":         {"missing", false},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			s.Assert().Equal(tt.exists, s.payload.HasField(tt.path))
		})
	}
}

func (s *PayloadFieldsSuite) TestGetStringReturnsStringValue() {
	val, ok := s.payload.GetString("session_id")

	s.Require().True(ok)
	s.Assert().Equal("s1", val)
}

func (s *PayloadFieldsSuite) TestGetStringRejectsNonStrings() {
	for _, path := range []string{"count", "active", "nothing", "tool_input", "missing"} {
		s.Run(path, func() {
			_, ok := s.payload.GetString(path)
			s.Assert().False(ok)
		})
	}
}

func (s *PayloadFieldsSuite) TestGetBytesReturnsRawValue() {
	val, ok := s.payload.GetBytes("tool_input")

	s.Require().True(ok)
	s.Assert().Equal(`{"command": "ls"}`, string(val))
}

func (s *PayloadFieldsSuite) TestGetBytesKeepsStringQuotes() {
	val, ok := s.payload.GetBytes("session_id")

	s.Require().True(ok)
	s.Assert().Equal(`"s1"`, string(val))
}

func (s *PayloadFieldsSuite) TestGetBytesReturnsFalseForAbsentKey() {
	_, ok := s.payload.GetBytes("missing")

	s.Assert().False(ok)
}

func (s *PayloadFieldsSuite) TestCoercingAccessors() {
	s.Assert().Equal("s1", s.payload.str("session_id"))
	s.Assert().Equal("", s.payload.str("nothing"))
	s.Assert().Equal("", s.payload.str("missing"))
	s.Assert().Equal("7", s.payload.str("count"))

	s.Assert().True(s.payload.boolean("active"))
	s.Assert().False(s.payload.boolean("missing"))

	s.Assert().Equal(map[string]any{"command": "ls"}, s.payload.object("tool_input"))
	s.Assert().Nil(s.payload.object("session_id"))
	s.Assert().Nil(s.payload.object("missing"))
}
