package types

func NewMsgPause(creator string) *MsgPause {
	return &MsgPause{
		Creator: creator,
	}
}

func NewMsgUnpause(creator string) *MsgUnpause {
	return &MsgUnpause{
		Creator: creator,
	}
}
