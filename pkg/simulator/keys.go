package simulator

// KeyHelp describes the keyboard layout shared by every simulator board
const KeyHelp = "W/Up=up S/Down=down A/Left=left D/Right=right K/Enter=button1 J/Space=button2 Esc=quit"
