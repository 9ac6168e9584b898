// Package qrcode renders PNG QR codes that point at an offer's call to
// action, for window stickers, flyers and other print companions of an
// email campaign.
//
// Generate encodes any content; ForOffer encodes the offer's primary link
// (the first button link, else the legacy CTA link). DataURI wraps the PNG
// for embedding in an <img> tag.
//
//	png, err := qrcode.ForOffer(o, qrcode.WithSize(512))
//	if errors.Is(err, qrcode.ErrNoLink) {
//		// the offer has no link to encode
//	}
package qrcode
