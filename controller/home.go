package controller

import (
	"net/http"

	"shoestore_be/helper/at"
	"shoestore_be/model"
)

// GetHome is the health check. It reports the address the service runs on.
func GetHome(respw http.ResponseWriter, req *http.Request) {
	var resp model.Response
	resp.Status = "ok"
	resp.Info = "shoestore admin api"
	resp.Response = at.GetIPaddress()
	at.WriteJSON(respw, http.StatusOK, resp)
}
