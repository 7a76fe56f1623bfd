// Package garde aggregates validation errors against field paths.
//
// The library is built around three small pieces:
//
//   - fieldpath.Path names a location inside a nested value as a
//     sequence of kind-tagged components (keys, indexes, anonymous
//     roots). Paths are immutable and share structure, so extending
//     them during a recursive descent is O(1).
//   - report.Report collects (path, error) pairs in insertion order and
//     answers prefix queries with Select.
//   - rules provides ready-made validation rules that record their
//     failures into a report at a path.
//
// The root package ties them together with the Validator interface and
// the Validate entry point.
//
// # Usage
//
//	type Address struct {
//		City string
//	}
//
//	type User struct {
//		Email     string
//		Addresses []Address
//	}
//
//	func (u *User) Validate(path fieldpath.Path, r *report.Report) {
//		rules.Apply(r, path.Join(fieldpath.Key("email")),
//			rules.Required(u.Email),
//			rules.ValidEmail(u.Email),
//		)
//		addresses := path.Join(fieldpath.Key("addresses"))
//		for i, a := range u.Addresses {
//			at := addresses.Join(fieldpath.Index(i)).Join(fieldpath.Key("city"))
//			rules.Apply(r, at, rules.Required(a.City))
//		}
//	}
//
//	if err := garde.Validate(&user); err != nil {
//		fmt.Print(err)
//		// email: must be a valid email address
//		// addresses[0].city: field is required
//	}
//
// Querying the failed report for one location:
//
//	rep := err.(*report.Report)
//	for e := range rep.Select(fieldpath.MustParsePattern("addresses[0]")) {
//		// errors attached below addresses[0]
//	}
package garde
