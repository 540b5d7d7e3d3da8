package timeline

import "birthday-timeline-api/entity"

// Visible decides whether the viewer may see the target's identifying data
// (avatar, unmasked phone). Public profiles are always visible, related
// viewers see through the privacy flag, and a user always sees themself.
//
// This is a display policy, not a data filter: hidden targets still appear in
// the roster and keep their month bucket, only the identifying image is
// masked in the UI.
func Visible(viewerID string, target entity.User, related bool) bool {
	if !target.IsProfilePrivate {
		return true
	}
	if related {
		return true
	}
	return target.ID == viewerID
}
