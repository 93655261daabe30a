package web

type Response struct {
	Error string `json:"error"`
}

type UserInfo struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PhotoInfo struct {
	Img     string `json:"img"`
	ImgName string `json:"img_name"`
	Time    string `json:"time"`
}
