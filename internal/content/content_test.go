package content

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

const minimal = `
phrases = ["Go", "Rust"]

[owner]
name = "Ada"

[[skill_groups]]
name = "backend"
skills = [{ name = "Go", level = "Expert", progress = 90 }]

[[skill_groups]]
name = "ops"

[[categories]]
name = "all"
label = "All"

[[categories]]
name = "cli"
label = "CLI"

[[projects]]
id = 1
title = "mailer"
category = "cli"

[[projects]]
id = 2
title = "site"
category = "all"
`

func TestBuiltin(t *testing.T) {
	Convey("The embedded content", t, func() {
		p, err := Builtin()
		So(err, ShouldBeNil)

		Convey("Should carry the home page data", func() {
			So(p.Phrases, ShouldHaveLength, 5)
			So(p.Phrases[0], ShouldEqual, "Full Stack Development")
			So(p.Stats, ShouldHaveLength, 3)
			So(p.Stats[2].Target, ShouldEqual, 100)
			So(p.Stats[2].Suffix, ShouldEqual, "%")
			So(p.Owner.Summary, ShouldStartWith, "Passionate about")
		})

		Convey("Should filter projects by category", func() {
			So(p.ProjectsIn(AllCategory), ShouldHaveLength, 4)
			So(p.ProjectsIn("fullstack"), ShouldHaveLength, 1)
			So(p.ProjectsIn("fullstack")[0].Title, ShouldEqual, "Flight Booking System")
			So(p.ProjectsIn("frontend"), ShouldHaveLength, 3)
			So(p.ProjectsIn("mobile"), ShouldBeEmpty)
		})

		Convey("Should fall back to the first skill group", func() {
			So(p.SkillGroupNames(), ShouldResemble, []string{"frontend", "backend"})
			So(p.SkillGroup("backend").Skills[0].Name, ShouldEqual, "PHP")
			So(p.SkillGroup("design").Name, ShouldEqual, "frontend")
		})

		Convey("Should list every referenced image once", func() {
			images := p.Images()
			So(images, ShouldContain, "p1(1).png")
			So(images, ShouldContain, "onecart.png")
			So(images, ShouldNotContain, "")
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Load", t, func() {
		fs := afero.NewMemMapFs()

		Convey("Should use the embedded content without a path", func() {
			p, err := Load(fs, "")
			So(err, ShouldBeNil)
			So(p.Owner.Name, ShouldEqual, "Soham Kachale")
		})

		Convey("Should read an override file", func() {
			So(afero.WriteFile(fs, "/srv/content.toml", []byte(minimal), 0o644), ShouldBeNil)
			p, err := Load(fs, "/srv/content.toml")
			So(err, ShouldBeNil)
			So(p.Owner.Name, ShouldEqual, "Ada")
			So(p.ProjectsIn("cli"), ShouldHaveLength, 1)
			So(p.Category("cli").Label, ShouldEqual, "CLI")
			So(p.Category("nope").Name, ShouldEqual, AllCategory)
		})

		Convey("Should fail on a missing file", func() {
			_, err := Load(fs, "/srv/missing.toml")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Validate", t, func() {
		Convey("Should reject content without phrases", func() {
			_, err := Parse([]byte(`[[skill_groups]]
name = "x"`))
			So(errors.Is(err, ErrNoPhrases), ShouldBeTrue)
		})

		Convey("Should reject an empty phrase", func() {
			_, err := Parse([]byte(`phrases = ["Go", ""]`))
			So(errors.Is(err, ErrNoPhrases), ShouldBeTrue)
		})

		Convey("Should reject content without skill groups", func() {
			_, err := Parse([]byte(`phrases = ["Go"]`))
			So(errors.Is(err, ErrNoSkillGroups), ShouldBeTrue)
		})

		Convey("Should reject negative stats", func() {
			_, err := Parse([]byte(`phrases = ["Go"]
[[skill_groups]]
name = "x"
[[stats]]
label = "debt"
target = -3`))
			So(errors.Is(err, ErrNegativeStat), ShouldBeTrue)
		})

		Convey("Should reject undeclared project categories", func() {
			_, err := Parse([]byte(`phrases = ["Go"]
[[skill_groups]]
name = "x"
[[projects]]
title = "p"
category = "mobile"`))
			So(errors.Is(err, ErrUnknownCategory), ShouldBeTrue)
		})

		Convey("Should reject malformed TOML", func() {
			_, err := Parse([]byte(`phrases = [`))
			So(err, ShouldNotBeNil)
		})
	})
}
