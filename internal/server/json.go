package server

import (
	"encoding/json"
	"net/http"

	xerrors "github.com/matzehuels/xrpg/pkg/errors"
	"github.com/matzehuels/xrpg/pkg/worldmap"
)

type locationJSON struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Shape string `json:"shape"`
}

type neighborJSON struct {
	Index         int    `json:"index"`
	Name          string `json:"name"`
	Minutes       int    `json:"minutes"`
	Bidirectional bool   `json:"bidirectional"`
}

type detailJSON struct {
	locationJSON
	Neighbors []neighborJSON `json:"neighbors"`
}

type pathJSON struct {
	From    int `json:"from"`
	To      int `json:"to"`
	Minutes int `json:"minutes"`
}

type errorJSON struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func toLocationJSON(loc worldmap.Location) locationJSON {
	return locationJSON{Index: loc.Index, Name: loc.Name, Shape: loc.Shape.String()}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := xerrors.GetCode(err)
	if code == "" {
		code = xerrors.ErrCodeInternal
	}
	writeJSON(w, xerrors.HTTPStatus(err), errorJSON{Code: string(code), Error: xerrors.UserMessage(err)})
}
