// Package cookie sets and reads HMAC-signed HTTP cookies.
//
// A Manager is created with one or more secrets of at least 32 bytes. The
// first secret signs new cookies and every secret is tried when verifying,
// so secrets can be rotated without logging visitors out.
//
//	man, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")}, cookie.WithMaxAge(86400))
//	if err != nil {
//		return err
//	}
//
//	man.SetSigned(w, "salesdesk_visitor", visitorID)
//	id, err := man.GetSigned(r, "salesdesk_visitor")
//	if errors.Is(err, cookie.ErrInvalidSignature) {
//		// issue a new one
//	}
package cookie
