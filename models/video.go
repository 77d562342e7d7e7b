package models

import "encoding/json"

// VideoRef is the normalized form of the three videoUrl shapes the API has
// been observed to return: a bare URL string, a {url, public_id} object, or
// nothing at all. Decoding happens once at the API boundary; downstream code
// never shape-sniffs.
type VideoRef struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

func (v *VideoRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = VideoRef{URL: s}
		return nil
	}

	var obj struct {
		URL      *string `json:"url"`
		PublicID string  `json:"public_id"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		if obj.URL == nil {
			// Object without a url field collapses to the empty ref,
			// whatever else it carries.
			*v = VideoRef{}
			return nil
		}
		*v = VideoRef{URL: *obj.URL, PublicID: obj.PublicID}
		return nil
	}

	*v = VideoRef{}
	return nil
}

// NormalizeVideoRef coerces any of the legacy videoUrl shapes into a VideoRef.
// Re-applying it to its own output is a no-op.
func NormalizeVideoRef(raw interface{}) VideoRef {
	switch val := raw.(type) {
	case nil:
		return VideoRef{}
	case string:
		return VideoRef{URL: val}
	case VideoRef:
		return val
	case *VideoRef:
		if val == nil {
			return VideoRef{}
		}
		return *val
	case map[string]interface{}:
		url, ok := val["url"].(string)
		if !ok {
			return VideoRef{}
		}
		publicID, _ := val["public_id"].(string)
		return VideoRef{URL: url, PublicID: publicID}
	default:
		return VideoRef{}
	}
}

func (v VideoRef) IsZero() bool {
	return v.URL == "" && v.PublicID == ""
}
