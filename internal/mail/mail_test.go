package mail

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSMTP(t *testing.T) {
	Convey("Given an SMTP sender with a recording transport", t, func() {
		var (
			gotAddr string
			gotTo   []string
			gotMsg  string
		)
		record := func(addr string, _ smtp.Auth, _ string, to []string, msg []byte) error {
			gotAddr, gotTo, gotMsg = addr, to, string(msg)
			return nil
		}
		s := NewSMTP("smtp.example.com", "587", "me@example.com", "secret", "owner@example.com").WithSendFunc(record)

		Convey("It should compose and send the message", func() {
			err := s.Send(context.Background(), Contact{Name: "Ada", Email: "ada@example.com", Message: "Hello"})
			So(err, ShouldBeNil)
			So(gotAddr, ShouldEqual, "smtp.example.com:587")
			So(gotTo, ShouldResemble, []string{"owner@example.com"})
			So(gotMsg, ShouldContainSubstring, "Subject: Portfolio Contact: Ada\r\n")
			So(gotMsg, ShouldContainSubstring, "Reply-To: ada@example.com\r\n")
			So(gotMsg, ShouldContainSubstring, "Message:\nHello")
		})

		Convey("It should not let a name inject headers", func() {
			_ = s.Send(context.Background(), Contact{Name: "x\r\nBcc: evil@example.com", Email: "a@b.c"})
			headers := strings.SplitN(gotMsg, "\r\n\r\n", 2)[0]
			So(headers, ShouldNotContainSubstring, "\r\nBcc:")
		})

		Convey("It should wrap transport failures", func() {
			boom := errors.New("boom")
			s.WithSendFunc(func(string, smtp.Auth, string, []string, []byte) error { return boom })
			err := s.Send(context.Background(), Contact{Name: "Ada"})
			So(errors.Is(err, boom), ShouldBeTrue)
		})
	})

	Convey("Without credentials", t, func() {
		s := NewSMTP("smtp.example.com", "587", "", "", "owner@example.com")
		So(s.Configured(), ShouldBeFalse)
		So(s.Send(context.Background(), Contact{}), ShouldEqual, ErrNotConfigured)
	})
}
